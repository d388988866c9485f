package container_test

import (
	"testing"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newLoadedContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainer(
		kernel.NewUUID(),
		kernel.MustNewCode("C-1001"),
		kernel.MustNewCode("SKU-9"),
		10,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return c
}

func assertMaterialInvariant(t *testing.T, c *container.Container) {
	t.Helper()
	_, hasSKU := c.SKU()
	_, hasQty := c.Quantity()
	emptyState := c.Status() == container.Idle || c.Status() == container.Empty
	assert.Equal(t, emptyState, !hasSKU, "sku presence for %s", c.Status())
	assert.Equal(t, emptyState, !hasQty, "quantity presence for %s", c.Status())
}

func TestNewContainer(t *testing.T) {
	id := kernel.NewUUID()
	locationID := kernel.NewUUID()

	t.Run("should create a PendingQC container", func(t *testing.T) {
		c, err := container.NewContainer(id, kernel.MustNewCode("C-1001"), kernel.MustNewCode("SKU-9"), 10, locationID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "C-1001", c.Code().String())
		sku, ok := c.SKU()
		assert.True(t, ok)
		assert.Equal(t, "SKU-9", sku.String())
		qty, ok := c.Quantity()
		assert.True(t, ok)
		assert.Equal(t, 10, qty)
		assert.Equal(t, container.PendingQC, c.Status())
		assert.True(t, c.LocationID().IsEqual(locationID))
		assert.Empty(t, c.Changes())
	})

	t.Run("should accept zero quantity", func(t *testing.T) {
		c, err := container.NewContainer(id, kernel.MustNewCode("C-1"), kernel.MustNewCode("SKU-9"), 0, locationID)

		require.NoError(t, err)
		qty, ok := c.Quantity()
		assert.True(t, ok)
		assert.Equal(t, 0, qty)
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		c, err := container.NewContainer(kernel.UUID{}, kernel.Code{}, kernel.Code{}, -1, kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrCodeIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreContainer(t *testing.T) {
	id := kernel.NewUUID()
	code := kernel.MustNewCode("C-2002")
	locationID := kernel.NewUUID()

	t.Run("should restore an idle container", func(t *testing.T) {
		c, err := container.RestoreContainer(id, code, kernel.Code{}, nil, container.Idle, locationID)

		require.NoError(t, err)
		assert.Equal(t, container.Idle, c.Status())
		assertMaterialInvariant(t, c)
	})

	t.Run("should restore a stored container", func(t *testing.T) {
		c, err := container.RestoreContainer(id, code, kernel.MustNewCode("SKU-1"), intPtr(3), container.Stored, locationID)

		require.NoError(t, err)
		assert.Equal(t, container.Stored, c.Status())
		assertMaterialInvariant(t, c)
	})

	t.Run("should restore an unknown status with or without material", func(t *testing.T) {
		bare, err := container.RestoreContainer(id, code, kernel.Code{}, nil, container.Unknown, locationID)
		require.NoError(t, err)
		assert.Equal(t, container.Unknown, bare.Status())

		loaded, err := container.RestoreContainer(id, code, kernel.MustNewCode("SKU-1"), intPtr(2), container.Unknown, locationID)
		require.NoError(t, err)
		_, ok := loaded.SKU()
		assert.True(t, ok)
	})

	t.Run("should not alias the quantity pointer", func(t *testing.T) {
		qty := intPtr(3)
		c, err := container.RestoreContainer(id, code, kernel.MustNewCode("SKU-1"), qty, container.Stored, locationID)
		require.NoError(t, err)

		*qty = 99

		got, _ := c.Quantity()
		assert.Equal(t, 3, got)
	})

	testCases := []struct {
		name     string
		sku      kernel.Code
		quantity *int
		status   container.Status
	}{
		{"idle with material", kernel.MustNewCode("SKU-1"), intPtr(1), container.Idle},
		{"empty with material", kernel.MustNewCode("SKU-1"), intPtr(1), container.Empty},
		{"stored without material", kernel.Code{}, nil, container.Stored},
		{"sku without quantity", kernel.MustNewCode("SKU-1"), nil, container.Stored},
		{"quantity without sku", kernel.Code{}, intPtr(1), container.Stored},
		{"negative quantity", kernel.MustNewCode("SKU-1"), intPtr(-1), container.Stored},
		{"unknown status with sku only", kernel.MustNewCode("SKU-1"), nil, container.Unknown},
	}
	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			c, err := container.RestoreContainer(id, code, tc.sku, tc.quantity, tc.status, locationID)

			require.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestContainer_Validate(t *testing.T) {
	var nilContainer *container.Container

	require.ErrorIs(t, nilContainer.Validate(), container.ErrContainerIsNotConstructed)
	require.ErrorIs(t, (&container.Container{}).Validate(), container.ErrContainerIsNotConstructed)
}

func TestContainer_Inspect(t *testing.T) {
	t.Run("pass moves to Stored and records status only", func(t *testing.T) {
		c := newLoadedContainer(t)
		locationID := c.LocationID()

		require.NoError(t, c.Inspect(container.Pass))

		assert.Equal(t, container.Stored, c.Status())
		assert.True(t, c.LocationID().IsEqual(locationID))
		assert.Equal(t, []container.Field{container.FieldStatus}, c.Changes())
		assertMaterialInvariant(t, c)
	})

	t.Run("fail moves to QCHold", func(t *testing.T) {
		c := newLoadedContainer(t)

		require.NoError(t, c.Inspect(container.Fail))

		assert.Equal(t, container.QCHold, c.Status())
	})

	t.Run("rejected decision leaves status unchanged", func(t *testing.T) {
		c := newLoadedContainer(t)

		require.Error(t, c.Inspect(container.UnknownDecision))

		assert.Equal(t, container.PendingQC, c.Status())
		assert.Empty(t, c.Changes())
	})
}

func TestContainer_MoveTo(t *testing.T) {
	c := newLoadedContainer(t)
	target := kernel.NewUUID()

	require.NoError(t, c.MoveTo(target))

	assert.True(t, c.LocationID().IsEqual(target))
	assert.Equal(t, container.PendingQC, c.Status())
	assert.Equal(t, []container.Field{container.FieldLocation}, c.Changes())
	sku, _ := c.SKU()
	assert.Equal(t, "SKU-9", sku.String())

	c.ClearChanges()
	require.NoError(t, c.MoveTo(target))
	assert.Empty(t, c.Changes(), "moving to the same location records nothing")

	require.ErrorIs(t, c.MoveTo(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
}

func TestContainer_Pick(t *testing.T) {
	c := newLoadedContainer(t)

	require.NoError(t, c.Pick())
	assert.Equal(t, container.InTransit, c.Status())
	assertMaterialInvariant(t, c)

	c.ClearChanges()
	require.NoError(t, c.Pick())
	assert.Empty(t, c.Changes())

	require.NoError(t, c.Return())
	err := c.Pick()
	require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
	assert.Equal(t, container.Idle, c.Status())
}

func TestContainer_Consume(t *testing.T) {
	c := newLoadedContainer(t)

	require.NoError(t, c.Consume())

	assert.Equal(t, container.Empty, c.Status())
	assert.Equal(t,
		[]container.Field{container.FieldSKU, container.FieldQuantity, container.FieldStatus},
		c.Changes())
	assertMaterialInvariant(t, c)

	require.ErrorIs(t, c.Consume(), errs.ErrTransitionIsNotAllowed)
}

func TestContainer_Return(t *testing.T) {
	c := newLoadedContainer(t)

	require.NoError(t, c.Return())

	assert.Equal(t, container.Idle, c.Status())
	assertMaterialInvariant(t, c)

	c.ClearChanges()
	require.NoError(t, c.Return())
	assert.Empty(t, c.Changes(), "second return is a no-op")
	assert.Equal(t, container.Idle, c.Status())
}

func TestContainer_Return_FromUnknownStatus(t *testing.T) {
	c, err := container.RestoreContainer(
		kernel.NewUUID(), kernel.MustNewCode("C-7"), kernel.MustNewCode("SKU-1"), intPtr(4), container.Unknown, kernel.NewUUID(),
	)
	require.NoError(t, err)

	require.ErrorIs(t, c.Pick(), errs.ErrTransitionIsNotAllowed)
	require.NoError(t, c.MoveTo(kernel.NewUUID()))
	require.NoError(t, c.Return())

	assert.Equal(t, container.Idle, c.Status())
	assertMaterialInvariant(t, c)
	assert.ElementsMatch(t,
		[]container.Field{container.FieldLocation, container.FieldStatus, container.FieldSKU, container.FieldQuantity},
		c.Changes(),
	)
}

func TestContainer_Changes_ReturnsCopy(t *testing.T) {
	c := newLoadedContainer(t)
	require.NoError(t, c.Pick())

	changes := c.Changes()
	changes[0] = container.FieldSKU

	assert.Equal(t, []container.Field{container.FieldStatus}, c.Changes())
}
