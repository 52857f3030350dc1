package validators

import (
	"github.com/go-playground/validator/v10"
)

// LatitudeValidation validates that a latitude value lies in [-90, 90].
func LatitudeValidation(fl validator.FieldLevel) bool {
	latitude := fl.Field().Float()
	return latitude >= -90 && latitude <= 90
}

// LongitudeValidation validates that a longitude value lies in [-180, 180].
func LongitudeValidation(fl validator.FieldLevel) bool {
	longitude := fl.Field().Float()
	return longitude >= -180 && longitude <= 180
}
