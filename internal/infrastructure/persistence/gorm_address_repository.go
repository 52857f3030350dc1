package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
	"github.com/ajeshvyas/address-book-service/internal/infrastructure/persistence/models"
	"github.com/ajeshvyas/address-book-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAddressRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAddressRepository creates a new GORM-based AddressRepository implementation
func NewGormAddressRepository(db *gorm.DB, logger logger.Logger) (addresses.AddressRepository, error) {
	return &gormAddressRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAddressRepository) Create(ctx context.Context, address *addresses.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AddressModel{}
	model.FromDomain(address)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}

	// The database assigns the primary key
	address.ID = model.ID

	r.logger.Info("Created address with id ", address.ID)
	return nil
}

func (r *gormAddressRepository) List(ctx context.Context, query *addresses.AddressQuery) ([]*addresses.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AddressModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AddressModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}

	domainList := make([]*addresses.Address, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAddressRepository) GetByID(ctx context.Context, addressID uint) (*addresses.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).Where("id = ?", addressID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address with ID %d: %w", addressID, addresses.ErrAddressNotFound)
		}
		return nil, fmt.Errorf("failed to fetch address: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAddressRepository) UpdateByID(ctx context.Context, address *addresses.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AddressModel{}
	model.FromDomain(address)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update address: %w", result.Error)
	}

	r.logger.Info("Updated address with id ", address.ID)
	return nil
}

func (r *gormAddressRepository) DeleteByID(ctx context.Context, addressID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", addressID).Delete(&models.AddressModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("address with ID %d: %w", addressID, addresses.ErrAddressNotFound)
	}

	r.logger.Info("Deleted address with id ", addressID)
	return nil
}
