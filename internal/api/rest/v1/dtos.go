package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajeshvyas/address-book-service/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// CreateAddressRequest is the JSON body of the create address endpoint.
// Latitude and longitude are pointers so that a present zero value can be
// told apart from a missing field.
type CreateAddressRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitudeRange"`
	Longitude *float64 `json:"longitude" validate:"required,longitudeRange"`
}

// Validate for validating CreateAddressRequest struct
func (r *CreateAddressRequest) Validate() error {
	return validateStruct(r)
}

// UpdateAddressRequest is the JSON body of the partial update endpoint.
// Absent fields leave the stored value untouched.
type UpdateAddressRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitudeRange"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitudeRange"`
}

// Validate for validating UpdateAddressRequest struct
func (r *UpdateAddressRequest) Validate() error {
	// omitempty skips an explicit empty string behind the pointer
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("validation failed: name must not be empty")
	}
	return validateStruct(r)
}

// AddressResponse is the JSON representation of an address record.
type AddressResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// ErrorResponse carries the error message of a failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries an informational message.
type InfoResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("latitudeRange", validators.LatitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("longitudeRange", validators.LongitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
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
