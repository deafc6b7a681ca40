package job

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress constructor")

// Address is the pickup or delivery location of a parcel. Street and city
// are required; the postcode is optional because not every service area
// uses one.
type Address struct {
	street   string
	city     string
	postcode string

	guard kernel.ConstructorGuard
}

// NewAddress creates a validated Address.
func NewAddress(street, city, postcode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:   street,
		city:     city,
		postcode: postcode,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address came from NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// Postcode returns the postcode, possibly empty.
func (a Address) Postcode() string {
	return a.postcode
}
