// Package user contains the read model for identities owned by the external
// authentication system. This application consumes users (for assignment
// validation and notification audiences) and never mutates them.
package user

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")

// User is an external identity: an id, a display name, a role and an active
// flag. Inactive users keep their assignments but drop out of notification
// audiences.
type User struct {
	id     kernel.UUID
	name   string
	role   kernel.Role
	active bool

	isConstructed bool
}

// RestoreUser reconstructs a user from the identity store.
func RestoreUser(id kernel.UUID, name string, role kernel.Role, active bool) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		role:          role,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the user came from RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Role returns the user's role.
func (u *User) Role() kernel.Role { return u.role }

// IsActive reports whether the user is active in the identity store.
func (u *User) IsActive() bool { return u.active }
