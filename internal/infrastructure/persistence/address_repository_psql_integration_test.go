//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
	"github.com/ajeshvyas/address-book-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPsqlRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	address := CreateTestAddress(t, "Postgres Office")

	err := ctx.AddressRepo.Create(context.Background(), address)
	require.NoError(t, err)

	fetchedAddress, err := ctx.AddressRepo.GetByID(context.Background(), address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Postgres Office", fetchedAddress.Name)
}

func TestAddressPsqlRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	address := CreateTestAddress(t, "")
	require.NoError(t, ctx.AddressRepo.Create(context.Background(), address))
	require.NoError(t, ctx.AddressRepo.DeleteByID(context.Background(), address.ID))

	_, err := ctx.AddressRepo.GetByID(context.Background(), address.ID)
	assert.ErrorIs(t, err, addresses.ErrAddressNotFound)
}
