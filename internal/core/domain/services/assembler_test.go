package services_test

import (
	"testing"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaterial(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainer(
		kernel.NewUUID(),
		kernel.MustNewCode("M-1"),
		kernel.MustNewCode("RAW-1"),
		20,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	require.NoError(t, c.Inspect(container.Pass))
	c.ClearChanges()
	return c
}

func plannedProduct() services.Product {
	return services.Product{
		ID:         kernel.NewUUID(),
		Code:       kernel.MustNewCode("P-1"),
		SKU:        kernel.MustNewCode("FG-1"),
		Quantity:   4,
		LocationID: kernel.NewUUID(),
	}
}

func TestAssembler_Assemble(t *testing.T) {
	t.Run("should consume material and create product", func(t *testing.T) {
		material := newMaterial(t)
		planned := plannedProduct()

		product, err := services.NewAssembler().Assemble(material, planned)

		require.NoError(t, err)
		assert.Equal(t, container.Empty, material.Status())
		_, hasSKU := material.SKU()
		_, hasQty := material.Quantity()
		assert.False(t, hasSKU)
		assert.False(t, hasQty)

		assert.Equal(t, container.PendingQC, product.Status())
		assert.Equal(t, "P-1", product.Code().String())
		sku, _ := product.SKU()
		assert.Equal(t, "FG-1", sku.String())
		qty, _ := product.Quantity()
		assert.Equal(t, 4, qty)
		assert.True(t, product.LocationID().IsEqual(planned.LocationID))
	})

	t.Run("should reject an unconstructed material", func(t *testing.T) {
		_, err := services.NewAssembler().Assemble(&container.Container{}, plannedProduct())

		require.ErrorIs(t, err, container.ErrContainerIsNotConstructed)
	})

	t.Run("should reject reusing the material code", func(t *testing.T) {
		material := newMaterial(t)
		planned := plannedProduct()
		planned.Code = kernel.MustNewCode("M-1")

		_, err := services.NewAssembler().Assemble(material, planned)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, container.Stored, material.Status())
	})

	t.Run("should reject an empty material and leave it untouched", func(t *testing.T) {
		material := newMaterial(t)
		require.NoError(t, material.Consume())
		material.ClearChanges()

		_, err := services.NewAssembler().Assemble(material, plannedProduct())

		require.ErrorIs(t, err, errs.ErrTransitionIsNotAllowed)
		assert.Empty(t, material.Changes())
	})

	t.Run("should reject an invalid product without consuming material", func(t *testing.T) {
		material := newMaterial(t)
		planned := plannedProduct()
		planned.Quantity = -1

		_, err := services.NewAssembler().Assemble(material, planned)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, container.Stored, material.Status())
		assert.Empty(t, material.Changes())
	})
}
