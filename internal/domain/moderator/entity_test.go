//go:build unit

package moderator_test

import (
	"testing"

	"mine-dine/internal/domain/moderator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestModerator(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()

	t.Run("active moderator validates", func(t *testing.T) {
		m := moderator.Reconstruct(id, userID, "MOD-REF", true)

		assert.NoError(t, m.ValidateActive())
		assert.Equal(t, id, m.ID())
		assert.Equal(t, userID, m.UserID())
		assert.Equal(t, "MOD-REF", m.ReferralCode())
		assert.True(t, m.IsActive())
	})

	t.Run("deactivated moderator is rejected", func(t *testing.T) {
		m := moderator.Reconstruct(id, userID, "MOD-REF", false)

		assert.ErrorIs(t, m.ValidateActive(), moderator.ErrInactive)
		assert.False(t, m.IsActive())
	})
}
