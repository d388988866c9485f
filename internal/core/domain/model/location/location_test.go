package location_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create a location", func(t *testing.T) {
		id := kernel.NewUUID()

		loc, err := location.NewLocation(id, kernel.MustNewCode("A-01-01"))

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.True(t, loc.ID().IsEqual(id))
		assert.Equal(t, "A-01-01", loc.Code().String())
	})

	t.Run("should reject zero id and code", func(t *testing.T) {
		loc, err := location.NewLocation(kernel.UUID{}, kernel.Code{})

		require.Error(t, err)
		assert.Nil(t, loc)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrCodeIsNotConstructed)
	})
}

func TestLocation_Validate(t *testing.T) {
	var nilLocation *location.Location

	require.ErrorIs(t, nilLocation.Validate(), location.ErrLocationIsNotConstructed)
	require.ErrorIs(t, (&location.Location{}).Validate(), location.ErrLocationIsNotConstructed)
}

func TestWellKnownCodes(t *testing.T) {
	assert.Equal(t, "RECEIVING", location.Receiving().String())
	assert.Equal(t, "ASSEMBLY-LINE-1", location.AssemblyLine().String())
}
