package addresses

import (
	"context"
	"errors"
)

// ErrAddressNotFound is returned when no address record matches the
// requested ID. Callers discriminate it with errors.Is.
var ErrAddressNotFound = errors.New("address not found")

// AddressService defines methods for managing address records.
type AddressService interface {
	// Create stores a new address record.
	// It returns the stored Address with its assigned ID and any error
	// encountered during the create process.
	Create(ctx context.Context, address *Address) (*Address, error)

	// List retrieves address records considering a query filter when set.
	// It returns a slice of Address and any error encountered during the
	// retrieval process.
	List(ctx context.Context, query *AddressQuery) ([]*Address, error)

	// GetByID retrieves an address record by its unique ID.
	// It returns the Address and any error encountered during the
	// retrieval process.
	GetByID(ctx context.Context, addressID uint) (*Address, error)

	// UpdateByID applies a partial update to an address record by ID.
	// It returns the updated Address and any error encountered during the
	// update process.
	UpdateByID(ctx context.Context, addressID uint, update *AddressUpdate) (*Address, error)

	// DeleteByID deletes an address record by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, addressID uint) error
}

// AddressSearchService defines methods for proximity searches over
// address records.
type AddressSearchService interface {
	// Nearby retrieves the addresses inside the search area of the query.
	// It returns a slice of Address and any error encountered during the
	// search process.
	Nearby(ctx context.Context, query *NearbyQuery) ([]*Address, error)
}

// AddressRepository defines the interface for Address-related operations
type AddressRepository interface {
	Create(ctx context.Context, address *Address) error
	List(ctx context.Context, query *AddressQuery) ([]*Address, error)
	GetByID(ctx context.Context, addressID uint) (*Address, error)
	UpdateByID(ctx context.Context, address *Address) error
	DeleteByID(ctx context.Context, addressID uint) error
}
