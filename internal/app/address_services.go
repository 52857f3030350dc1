// Package app implements the application services defined by the domain
// contracts, coordinating repositories and search logic.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
	"github.com/ajeshvyas/address-book-service/internal/pkg/logger"
)

// addressService implements the AddressService interface for managing address records
type addressService struct {
	addressRepo addresses.AddressRepository
	logger      logger.Logger
}

// NewAddressService creates a new addressService instance
func NewAddressService(
	addressRepo addresses.AddressRepository,
	logger logger.Logger,
) (addresses.AddressService, error) {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger,
	}, nil
}

// Create stores a new address record.
// It returns the stored Address with its assigned ID and any error
// encountered during the create process.
func (s *addressService) Create(ctx context.Context, address *addresses.Address) (*addresses.Address, error) {
	if address.DateTimeCreated.IsZero() {
		address.DateTimeCreated = time.Now()
	}

	if err := address.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return address, nil
}

// List retrieves address records considering a query filter when set.
func (s *addressService) List(ctx context.Context, query *addresses.AddressQuery) ([]*addresses.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	addressList, err := s.addressRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return addressList, nil
}

// GetByID retrieves an address record by its unique ID.
func (s *addressService) GetByID(ctx context.Context, addressID uint) (*addresses.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return address, nil
}

// UpdateByID applies a partial update to an address record by ID.
// Only the non-nil fields of the update change the stored record.
func (s *addressService) UpdateByID(ctx context.Context, addressID uint, update *addresses.AddressUpdate) (*addresses.Address, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	address, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	update.Apply(address)

	if err := s.addressRepo.UpdateByID(ctx, address); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return address, nil
}

// DeleteByID deletes an address record by ID.
func (s *addressService) DeleteByID(ctx context.Context, addressID uint) error {
	if err := s.addressRepo.DeleteByID(ctx, addressID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// addressSearchService implements the AddressSearchService interface for proximity searches
type addressSearchService struct {
	addressRepo addresses.AddressRepository
	logger      logger.Logger
}

// NewAddressSearchService creates a new addressSearchService instance
func NewAddressSearchService(
	addressRepo addresses.AddressRepository,
	logger logger.Logger,
) (addresses.AddressSearchService, error) {
	return &addressSearchService{
		addressRepo: addressRepo,
		logger:      logger,
	}, nil
}

// Nearby retrieves the addresses inside the search area of the query.
// All records are fetched and filtered in memory against the query box.
func (s *addressSearchService) Nearby(ctx context.Context, query *addresses.NearbyQuery) ([]*addresses.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	addressList, err := s.addressRepo.List(ctx, addresses.NewAddressQuery())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	box := query.Box()

	filteredAddresses := []*addresses.Address{}
	for _, address := range addressList {
		if box.Contains(address.Latitude, address.Longitude) {
			filteredAddresses = append(filteredAddresses, address)
		}
	}

	s.logger.Info("Nearby search matched ", len(filteredAddresses), " of ", len(addressList), " addresses")
	return filteredAddresses, nil
}
