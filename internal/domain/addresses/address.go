package addresses

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajeshvyas/address-book-service/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Address entity
type Address struct {
	ID              uint      `validate:"-"`
	Name            string    `validate:"required,min=1,max=255"`
	Latitude        float64   `validate:"latitudeRange"`
	Longitude       float64   `validate:"longitudeRange"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Address struct
func (a *Address) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("latitudeRange", validators.LatitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("longitudeRange", validators.LongitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// AddressUpdate carries the fields of a partial update. Nil fields are
// left untouched by the update.
type AddressUpdate struct {
	Name      *string  `validate:"omitempty,min=1,max=255"`
	Latitude  *float64 `validate:"omitempty"`
	Longitude *float64 `validate:"omitempty"`
}

// Validate for validating AddressUpdate struct
func (u *AddressUpdate) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if u.Name != nil && *u.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if u.Latitude != nil && (*u.Latitude < -90 || *u.Latitude > 90) {
		return fmt.Errorf("latitude value must be between -90 to 90")
	}
	if u.Longitude != nil && (*u.Longitude < -180 || *u.Longitude > 180) {
		return fmt.Errorf("longitude value must be between -180 to 180")
	}

	return nil
}

// Apply copies the non-nil update fields onto the address.
func (u *AddressUpdate) Apply(a *Address) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Latitude != nil {
		a.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		a.Longitude = *u.Longitude
	}
}
