package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
	"github.com/ajeshvyas/address-book-service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AddressHandler defines the interface for handling address-related operations
type AddressHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Nearby(ctx *gin.Context)
}

// addressHandler struct holds the services
type addressHandler struct {
	addressService addresses.AddressService
	searchService  addresses.AddressSearchService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService addresses.AddressService, searchService addresses.AddressSearchService) AddressHandler {
	return &addressHandler{
		addressService: addressService,
		searchService:  searchService,
	}
}

// Create handles the POST request to store a new address record
// @Summary Create an address record
// @Description Store a new address with its name and coordinates.
// @Tags Address
// @Accept json
// @Produce json
// @Param requestBody body CreateAddressRequest true "Address Data"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Router /addresses [post]
func (handler *addressHandler) Create(ctx *gin.Context) {

	var request CreateAddressRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid address data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	address := &addresses.Address{
		Name:      request.Name,
		Latitude:  *request.Latitude,
		Longitude: *request.Longitude,
	}

	createdAddress, err := handler.addressService.Create(ctx, address)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating address: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toAddressResponse(createdAddress))
}

// List handles the GET request to list address records with optional query parameters
// @Summary List address records based on query parameters
// @Description Fetch a list of addresses filtered by name, with pagination and sorting options.
// @Tags Address
// @Accept json
// @Produce json
// @Param name query string false "Name substring filter"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Router /addresses [get]
func (handler *addressHandler) List(ctx *gin.Context) {
	query := addresses.NewAddressQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	addressList, err := handler.addressService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AddressResponse{}
	for _, address := range addressList {
		listResponse = append(listResponse, toAddressResponse(address))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an address record by ID
// @Summary Retrieve an address record by ID
// @Description Fetch a single address record including its coordinates and creation date.
// @Tags Address
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} AddressResponse
// @Failure 404 {object} ErrorResponse
// @Router /address/{id} [get]
func (handler *addressHandler) GetByID(ctx *gin.Context) {
	addressID, ok := utils.ConvertToUint(ctx.Param("id"))
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("address with id %s not found", ctx.Param("id"))
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	address, err := handler.addressService.GetByID(ctx, addressID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("address with id %d not found", addressID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toAddressResponse(address))
}

// UpdateByID handles the PUT request to partially update an address record by ID
// @Summary Update an address record by ID
// @Description Apply a partial update to an address; absent fields keep their stored values.
// @Tags Address
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param requestBody body UpdateAddressRequest true "Address Update Data"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /address/{id} [put]
func (handler *addressHandler) UpdateByID(ctx *gin.Context) {
	addressID, ok := utils.ConvertToUint(ctx.Param("id"))
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("address with id %s not found", ctx.Param("id"))
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var request UpdateAddressRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid address data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	update := &addresses.AddressUpdate{
		Name:      request.Name,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}

	updatedAddress, err := handler.addressService.UpdateByID(ctx, addressID, update)
	if err != nil {
		if errors.Is(err, addresses.ErrAddressNotFound) {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("address with id %d not found", addressID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating address: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toAddressResponse(updatedAddress))
}

// DeleteByID handles the DELETE request to delete an address record by ID
// @Summary Delete an address record by ID
// @Description Delete a single address record by ID.
// @Tags Address
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /address/{id} [delete]
func (handler *addressHandler) DeleteByID(ctx *gin.Context) {
	addressID, ok := utils.ConvertToUint(ctx.Param("id"))
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("address with id %s not found", ctx.Param("id"))
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	if err := handler.addressService.DeleteByID(ctx, addressID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting address with id %d", addressID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted address with id %d", addressID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// Nearby handles the GET request to search addresses around a coordinate
// @Summary Search addresses near a coordinate
// @Description Fetch the addresses inside the search box around the given center coordinate.
// @Tags Address
// @Accept json
// @Produce json
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param distance query number true "Search radius in degrees"
// @Success 200 {array} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Router /addresses/nearby [get]
func (handler *addressHandler) Nearby(ctx *gin.Context) {
	latitude, err := strconv.ParseFloat(ctx.Query("latitude"), 64)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "latitude must be a valid number"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	longitude, err := strconv.ParseFloat(ctx.Query("longitude"), 64)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "longitude must be a valid number"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	distance, err := strconv.ParseFloat(ctx.Query("distance"), 64)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "distance must be a valid number"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	query := &addresses.NearbyQuery{
		Latitude:  latitude,
		Longitude: longitude,
		Distance:  distance,
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	addressList, err := handler.searchService.Nearby(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("nearby search failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AddressResponse{}
	for _, address := range addressList {
		listResponse = append(listResponse, toAddressResponse(address))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

func toAddressResponse(address *addresses.Address) AddressResponse {
	return AddressResponse{
		ID:              address.ID,
		Name:            address.Name,
		Latitude:        address.Latitude,
		Longitude:       address.Longitude,
		DateTimeCreated: address.DateTimeCreated,
	}
}
