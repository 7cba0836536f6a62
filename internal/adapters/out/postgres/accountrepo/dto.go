// Package accountrepo provides data transfer objects and mapping
// functions for account persistence.
package accountrepo

import (
	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for user accounts.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
	Address      string
	Role         string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Address:      aggregate.Address(),
		Role:         string(aggregate.Role()),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Username, dto.PasswordHash, dto.Address, account.Role(dto.Role))
}
