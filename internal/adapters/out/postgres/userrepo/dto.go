// Package userrepo reads the user rows replicated from the external
// identity system. The rows are consumed for assignment validation and
// notification audiences and are never written by this application.
package userrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database row for a replicated identity.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   string `gorm:"index"`
	Active bool   `gorm:"index"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, kernel.Role(dto.Role), dto.Active)
}
