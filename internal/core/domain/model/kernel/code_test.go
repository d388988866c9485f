package kernel_test

import (
	"strings"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		code, err := kernel.NewCode("containerCode", "  C-1001 \n")

		require.NoError(t, err)
		assert.Equal(t, "C-1001", code.String())
		assert.False(t, code.IsZero())
		require.NoError(t, code.Validate())
	})

	t.Run("should treat blank strings as missing", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t"} {
			_, err := kernel.NewCode("containerCode", raw)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), "containerCode")
		}
	})

	t.Run("should reject codes longer than the column width", func(t *testing.T) {
		_, err := kernel.NewCode("sku", strings.Repeat("X", kernel.CodeMaxLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept codes at the column width", func(t *testing.T) {
		_, err := kernel.NewCode("sku", strings.Repeat("X", kernel.CodeMaxLength))

		require.NoError(t, err)
	})

	t.Run("should reject control characters", func(t *testing.T) {
		_, err := kernel.NewCode("locationCode", "A-01\x00-01")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCode_IsEqual(t *testing.T) {
	a := kernel.MustNewCode("A-01-01")
	b := kernel.MustNewCode(" A-01-01 ")
	c := kernel.MustNewCode("a-01-01")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestCode_ZeroValue(t *testing.T) {
	var code kernel.Code

	assert.True(t, code.IsZero())
	require.ErrorIs(t, code.Validate(), errs.ErrValueIsRequired)
}

func TestMustNewCode_PanicsOnBlank(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewCode(" ") })
}
