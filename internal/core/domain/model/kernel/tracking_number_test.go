package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	first := kernel.NewTrackingNumber()
	second := kernel.NewTrackingNumber()

	assert.Regexp(t, `^PCL-[0-9A-HJKMNP-TV-Z]{26}$`, first.String())
	assert.NotEqual(t, first.String(), second.String())
	assert.False(t, first.IsZero())

	parsed, err := kernel.ParseTrackingNumber(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, parsed)
}

func TestParseTrackingNumber(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		tn, err := kernel.ParseTrackingNumber("  pf-2024-000123 ")

		require.NoError(t, err)
		assert.Equal(t, "PF-2024-000123", tn.String())
	})

	t.Run("requires a value", func(t *testing.T) {
		_, err := kernel.ParseTrackingNumber("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects bad characters and lengths", func(t *testing.T) {
		for _, input := range []string{"ABC", "PCL_123456", "-PCL123456", "PCL 123456"} {
			_, err := kernel.ParseTrackingNumber(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("zero value reports IsZero", func(t *testing.T) {
		var tn kernel.TrackingNumber

		assert.True(t, tn.IsZero())
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Run("lower-cases and trims", func(t *testing.T) {
		email, err := kernel.NormalizeEmail("userEmail", "  Sender@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "sender@example.com", email)
	})

	t.Run("requires a value", func(t *testing.T) {
		_, err := kernel.NormalizeEmail("userEmail", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "userEmail")
	})

	t.Run("rejects display-name forms and garbage", func(t *testing.T) {
		for _, input := range []string{"not-an-email", "Bob <bob@example.com>", "bob@"} {
			_, err := kernel.NormalizeEmail("riderEmail", input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}
