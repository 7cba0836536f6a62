// Package kernel provides shared value objects used across the domain
// model: UUID identifiers and minute-precision TimeOfDay values for
// restaurant operating windows. Both are immutable, validated at
// construction, and safe for concurrent use.
package kernel
