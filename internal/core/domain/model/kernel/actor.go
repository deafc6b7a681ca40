package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role identifies what a user is allowed to do. Roles are supplied by the
// authentication collaborator together with the user id; this system trusts
// them and never issues or verifies credentials itself.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleSuperAdmin      Role = "superadmin"
	RoleDriver          Role = "driver"
	RoleDeliveryAgent   Role = "delivery_agent"
	RoleWarehouse       Role = "warehouse"
	RoleCustomerService Role = "customer_service"
	RoleCustomer        Role = "customer"
)

func validRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:           {},
		RoleSuperAdmin:      {},
		RoleDriver:          {},
		RoleDeliveryAgent:   {},
		RoleWarehouse:       {},
		RoleCustomerService: {},
		RoleCustomer:        {},
	}
}

// RoleFromString parses a role received from the outside (headers, storage).
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role against the known set.
func (r Role) Validate() error {
	if _, ok := validRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsElevated reports whether the role bypasses ownership checks on job
// status transitions.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor constructor")

// Actor is the authenticated identity performing an operation. It carries
// only what the authorization rules need: the user id and the role.
type Actor struct {
	id   UUID
	role Role

	guard ConstructorGuard
}

// NewActor creates a validated Actor.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor came from NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's user id.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}
