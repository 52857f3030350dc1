//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testAddress() *addresses.Address {
	return &addresses.Address{
		ID:              1,
		Name:            "Central Library",
		Latitude:        12.9716,
		Longitude:       77.5946,
		DateTimeCreated: time.Now(),
	}
}

func TestAddressHandler_Create_Success(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	requestBody := `{"name": "Central Library", "latitude": 12.9716, "longitude": 77.5946}`

	mockAddressService.
		On("Create", mock.Anything, mock.AnythingOfType("*addresses.Address")).
		Return(testAddress(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/addresses", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Central Library")
	mockAddressService.AssertExpectations(t)
}

func TestAddressHandler_Create_InvalidLatitude(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	requestBody := `{"name": "Broken", "latitude": 95.0, "longitude": 0.0}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/addresses", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAddressService.AssertNotCalled(t, "Create")
}

func TestAddressHandler_Create_MissingCoordinates(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	requestBody := `{"name": "No Coordinates"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/addresses", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAddressService.AssertNotCalled(t, "Create")
}

func TestAddressHandler_List_Success(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockAddressService.
		On("List", mock.Anything, mock.Anything).
		Return([]*addresses.Address{testAddress()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/addresses", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Central Library")
	mockAddressService.AssertExpectations(t)
}

func TestAddressHandler_List_Empty(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockAddressService.
		On("List", mock.Anything, mock.Anything).
		Return([]*addresses.Address{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/addresses", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestAddressHandler_List_InvalidSortBy(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/addresses?sortBy=secret_column", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAddressService.AssertNotCalled(t, "List")
}

func TestAddressHandler_GetByID_Success(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockAddressService.
		On("GetByID", mock.Anything, uint(1)).
		Return(testAddress(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/address/1", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "1"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Central Library")
	mockAddressService.AssertExpectations(t)
}

func TestAddressHandler_GetByID_NotFound(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockAddressService.
		On("GetByID", mock.Anything, uint(99)).
		Return(nil, addresses.ErrAddressNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/address/99", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "99"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_GetByID_NonNumericID(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/address/abc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockAddressService.AssertNotCalled(t, "GetByID")
}

func TestAddressHandler_UpdateByID_Success(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	updatedAddress := testAddress()
	updatedAddress.Name = "City Library"

	requestBody := `{"name": "City Library"}`

	mockAddressService.
		On("UpdateByID", mock.Anything, uint(1), mock.AnythingOfType("*addresses.AddressUpdate")).
		Return(updatedAddress, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/address/1", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "1"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "City Library")
	mockAddressService.AssertExpectations(t)
}

func TestAddressHandler_UpdateByID_NotFound(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	requestBody := `{"name": "City Library"}`

	mockAddressService.
		On("UpdateByID", mock.Anything, uint(99), mock.Anything).
		Return(nil, addresses.ErrAddressNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/address/99", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "99"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_UpdateByID_InvalidLongitude(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	requestBody := `{"longitude": 200.0}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/address/1", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "1"}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAddressService.AssertNotCalled(t, "UpdateByID")
}

func TestAddressHandler_DeleteByID_Success(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockAddressService.
		On("DeleteByID", mock.Anything, uint(1)).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/address/1", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "1"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockAddressService.AssertExpectations(t)
}

func TestAddressHandler_DeleteByID_NotFound(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockAddressService.
		On("DeleteByID", mock.Anything, uint(99)).
		Return(errors.New("address with ID 99: address not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/address/99", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "99"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_Nearby_Success(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	mockSearchService.
		On("Nearby", mock.Anything, mock.AnythingOfType("*addresses.NearbyQuery")).
		Return([]*addresses.Address{testAddress()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/addresses/nearby?latitude=12.9&longitude=77.5&distance=1", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Nearby(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Central Library")
	mockSearchService.AssertExpectations(t)
}

func TestAddressHandler_Nearby_MissingParams(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/addresses/nearby?latitude=12.9", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Nearby(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSearchService.AssertNotCalled(t, "Nearby")
}

func TestAddressHandler_Nearby_InvalidCenter(t *testing.T) {
	mockAddressService := new(MockAddressService)
	mockSearchService := new(MockAddressSearchService)

	handler := NewAddressHandler(mockAddressService, mockSearchService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/addresses/nearby?latitude=99&longitude=77.5&distance=1", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Nearby(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSearchService.AssertNotCalled(t, "Nearby")
}
