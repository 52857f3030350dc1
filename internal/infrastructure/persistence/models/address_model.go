package models

import (
	"time"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
)

// AddressModel is the GORM database model for address records (infrastructure concern)
type AddressModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"not null;index;type:varchar(255)"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts GORM model to domain entity
func (m *AddressModel) ToDomain() *addresses.Address {
	return &addresses.Address{
		ID:              m.ID,
		Name:            m.Name,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AddressModel) FromDomain(a *addresses.Address) {
	m.ID = a.ID
	m.Name = a.Name
	m.Latitude = a.Latitude
	m.Longitude = a.Longitude
	m.DateTimeCreated = a.DateTimeCreated
}
