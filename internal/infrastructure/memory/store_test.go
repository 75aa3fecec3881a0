package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
	"github.com/logitrack-io/logitrack/pkg/helpers"
)

func TestSeedDemoRunsOnce(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	seeded, err := st.SeedDemo()
	require.NoError(t, err)
	assert.True(t, seeded)

	// Second call is a no-op.
	seeded, err = st.SeedDemo()
	require.NoError(t, err)
	assert.False(t, seeded)

	u, err := st.Users().GetByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "demo123"))

	list, err := st.Shipments().ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Newest creation date first: TRK003 (Jan 20), TRK001 (Jan 15), TRK002 (Jan 10).
	assert.Equal(t, "TRK003", list[0].TrackingID)
	assert.Equal(t, "TRK001", list[1].TrackingID)
	assert.Equal(t, "TRK002", list[2].TrackingID)
}

func TestRepositoriesReturnCopies(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	s := &entity.Shipment{
		TrackingID:  "TRK100",
		Origin:      "NYC",
		Destination: "LA",
		Status:      entity.StatusProcessing,
		Weight:      ptr(10.0),
		OwnerID:     "u1",
	}
	require.NoError(t, st.Shipments().Create(ctx, s))
	require.NotEmpty(t, s.ID)

	// Mutating the caller's record must not leak into the store.
	*s.Weight = 99.0
	s.Origin = "Mars"

	got, err := st.Shipments().GetByOwner(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, "NYC", got.Origin)
	require.NotNil(t, got.Weight)
	assert.Equal(t, 10.0, *got.Weight)
}

func TestUserEmailUniqueness(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Users().Create(ctx, &entity.User{Email: "a@example.com", Password: "x", Name: "A"}))

	err := st.Users().Create(ctx, &entity.User{Email: "a@example.com", Password: "y", Name: "B"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}
