package v1

import (
	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	addressService addresses.AddressService,
	searchService addresses.AddressSearchService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Address Routes
	addressHandler := NewAddressHandler(addressService, searchService)
	v1.POST("/addresses", addressHandler.Create)
	v1.GET("/addresses", addressHandler.List)
	v1.GET("/addresses/nearby", addressHandler.Nearby)
	v1.GET("/address/:id", addressHandler.GetByID)
	v1.PUT("/address/:id", addressHandler.UpdateByID)
	v1.DELETE("/address/:id", addressHandler.DeleteByID)
}
