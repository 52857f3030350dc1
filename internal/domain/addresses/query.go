package addresses

import (
	"errors"
	"fmt"

	"github.com/ajeshvyas/address-book-service/internal/domain/geo"
	"github.com/ajeshvyas/address-book-service/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// AddressQuery represents the filter, pagination and sorting options for
// listing addresses. The zero value lists everything.
type AddressQuery struct {
	Name      string `validate:"omitempty,max=255"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=id name date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewAddressQuery creates an AddressQuery with default values.
func NewAddressQuery() *AddressQuery {
	return &AddressQuery{}
}

// Validate for validating AddressQuery struct
func (q *AddressQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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

// NearbyQuery represents a proximity search around a center coordinate.
// Distance is a radius in degrees.
type NearbyQuery struct {
	Latitude  float64 `validate:"latitudeRange"`
	Longitude float64 `validate:"longitudeRange"`
	Distance  float64 `validate:"gte=0"`
}

// Validate for validating NearbyQuery struct
func (q *NearbyQuery) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("latitudeRange", validators.LatitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("longitudeRange", validators.LongitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(q)
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

// Box returns the search area for the query. The box is widened by one
// degree beyond the requested radius and its boundary does not match.
func (q *NearbyQuery) Box() geo.BoundingBox {
	return geo.NewBoundingBox(q.Latitude, q.Longitude, q.Distance+1)
}
