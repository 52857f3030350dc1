//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"

	"github.com/stretchr/testify/mock"
)

// MockAddressService is a mock implementation of AddressService
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) Create(ctx context.Context, address *addresses.Address) (*addresses.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*addresses.Address), args.Error(1)
}

func (m *MockAddressService) List(ctx context.Context, query *addresses.AddressQuery) ([]*addresses.Address, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*addresses.Address), args.Error(1)
}

func (m *MockAddressService) GetByID(ctx context.Context, addressID uint) (*addresses.Address, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*addresses.Address), args.Error(1)
}

func (m *MockAddressService) UpdateByID(ctx context.Context, addressID uint, update *addresses.AddressUpdate) (*addresses.Address, error) {
	args := m.Called(ctx, addressID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*addresses.Address), args.Error(1)
}

func (m *MockAddressService) DeleteByID(ctx context.Context, addressID uint) error {
	args := m.Called(ctx, addressID)
	return args.Error(0)
}

// MockAddressSearchService is a mock implementation of AddressSearchService
type MockAddressSearchService struct {
	mock.Mock
}

func (m *MockAddressSearchService) Nearby(ctx context.Context, query *addresses.NearbyQuery) ([]*addresses.Address, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*addresses.Address), args.Error(1)
}
