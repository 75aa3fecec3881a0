package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
	"github.com/logitrack-io/logitrack/internal/infrastructure/memory"
)

func newShipmentService(t *testing.T) *ShipmentService {
	t.Helper()
	store := memory.NewStore()
	return NewShipmentService(store.Shipments(), nil, nil, "")
}

func mustCreate(t *testing.T, svc *ShipmentService, owner string, in CreateShipmentInput) *entity.Shipment {
	t.Helper()
	s, err := svc.Create(context.Background(), owner, in)
	require.NoError(t, err)
	return s
}

func baseInput(tracking string) CreateShipmentInput {
	return CreateShipmentInput{
		TrackingID:  tracking,
		Origin:      "NYC",
		Destination: "LA",
		Status:      entity.StatusProcessing,
	}
}

func TestCreateAssignsDefaults(t *testing.T) {
	svc := newShipmentService(t)

	s := mustCreate(t, svc, "u1", baseInput("TRK100"))

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "u1", s.OwnerID)
	assert.Nil(t, s.Weight, "absent weight must be stored as null, not zero")
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
}

func TestCreateRequiredFields(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	cases := map[string]CreateShipmentInput{
		"trackingId":  {Origin: "NYC", Destination: "LA", Status: entity.StatusProcessing},
		"origin":      {TrackingID: "T1", Destination: "LA", Status: entity.StatusProcessing},
		"destination": {TrackingID: "T1", Origin: "NYC", Status: entity.StatusProcessing},
		"status":      {TrackingID: "T1", Origin: "NYC", Destination: "LA"},
	}
	for field, in := range cases {
		_, err := svc.Create(ctx, "u1", in)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := newShipmentService(t)

	in := baseInput("TRK100")
	in.Status = "Lost In Space"
	_, err := svc.Create(context.Background(), "u1", in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestCreateWeightNormalization(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	zero := 0.0
	in := baseInput("TRK1")
	in.Weight = &zero
	s, err := svc.Create(ctx, "u1", in)
	require.NoError(t, err)
	assert.Nil(t, s.Weight, "zero weight is treated as absent")

	neg := -1.5
	in = baseInput("TRK2")
	in.Weight = &neg
	_, err = svc.Create(ctx, "u1", in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weight", verr.Field)

	w := 25.5
	in = baseInput("TRK3")
	in.Weight = &w
	s, err = svc.Create(ctx, "u1", in)
	require.NoError(t, err)
	require.NotNil(t, s.Weight)
	assert.Equal(t, 25.5, *s.Weight)
}

func TestDuplicateTrackingIDAcrossOwners(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	mustCreate(t, svc, "u1", baseInput("TRK100"))

	_, err := svc.Create(ctx, "u1", baseInput("TRK100"))
	assert.ErrorIs(t, err, repository.ErrDuplicateTrackingID)

	// Uniqueness is global, not per owner.
	_, err = svc.Create(ctx, "u2", baseInput("TRK100"))
	assert.ErrorIs(t, err, repository.ErrDuplicateTrackingID)
}

func TestOwnerIsolation(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	s := mustCreate(t, svc, "u1", baseInput("TRK100"))

	// Another user's get and delete are indistinguishable from a
	// missing record.
	_, err := svc.Get(ctx, "u2", s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "u2", s.ID), repository.ErrNotFound)

	list, err := svc.List(ctx, "u2", "")
	require.NoError(t, err)
	assert.Empty(t, list)

	// The record still exists for its owner.
	got, err := svc.Get(ctx, "u1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, "TRK100", got.TrackingID)
}

func TestListNewestFirst(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	mustCreate(t, svc, "u1", baseInput("TRK1"))
	time.Sleep(2 * time.Millisecond)
	mustCreate(t, svc, "u1", baseInput("TRK2"))
	time.Sleep(2 * time.Millisecond)
	mustCreate(t, svc, "u1", baseInput("TRK3"))

	list, err := svc.List(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "TRK3", list[0].TrackingID)
	assert.Equal(t, "TRK2", list[1].TrackingID)
	assert.Equal(t, "TRK1", list[2].TrackingID)
}

func TestUpdatePartialPatch(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	w := 12.0
	in := baseInput("TRK100")
	in.Weight = &w
	s := mustCreate(t, svc, "u1", in)

	time.Sleep(2 * time.Millisecond)
	desc := "fragile"
	updated, err := svc.Update(ctx, "u1", s.ID, UpdateShipmentInput{
		Description: OptionalString{Set: true, Value: &desc},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Description)
	assert.Equal(t, "fragile", *updated.Description)
	// Everything else keeps its prior value.
	assert.Equal(t, s.TrackingID, updated.TrackingID)
	assert.Equal(t, s.Origin, updated.Origin)
	assert.Equal(t, s.Destination, updated.Destination)
	assert.Equal(t, s.Status, updated.Status)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 12.0, *updated.Weight)
	assert.Equal(t, s.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(s.UpdatedAt))
}

func TestUpdateStatusOnly(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	s := mustCreate(t, svc, "u1", baseInput("TRK100"))

	updated, err := svc.Update(ctx, "u1", s.ID, UpdateShipmentInput{Status: entity.StatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, updated.Status)
	assert.Equal(t, s.TrackingID, updated.TrackingID)
	assert.Equal(t, s.Origin, updated.Origin)
}

func TestUpdateNullVersusAbsent(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	w := 5.0
	in := baseInput("TRK100")
	in.Weight = &w
	s := mustCreate(t, svc, "u1", in)

	// Empty patch leaves weight untouched.
	updated, err := svc.Update(ctx, "u1", s.ID, UpdateShipmentInput{})
	require.NoError(t, err)
	require.NotNil(t, updated.Weight)

	// Explicit null clears it.
	updated, err = svc.Update(ctx, "u1", s.ID, UpdateShipmentInput{
		Weight: OptionalFloat{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Weight)
}

func TestUpdateTrackingIDUniqueness(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	mustCreate(t, svc, "u1", baseInput("TRK100"))
	s2 := mustCreate(t, svc, "u1", baseInput("TRK200"))

	_, err := svc.Update(ctx, "u1", s2.ID, UpdateShipmentInput{TrackingID: "TRK100"})
	assert.ErrorIs(t, err, repository.ErrDuplicateTrackingID)

	// Re-submitting the record's own tracking id is not a conflict.
	_, err = svc.Update(ctx, "u1", s2.ID, UpdateShipmentInput{TrackingID: "TRK200"})
	assert.NoError(t, err)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newShipmentService(t)

	s := mustCreate(t, svc, "u1", baseInput("TRK100"))

	_, err := svc.Update(context.Background(), "u1", s.ID, UpdateShipmentInput{Status: "Teleported"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestDeleteThenGet(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	s := mustCreate(t, svc, "u1", baseInput("TRK100"))

	require.NoError(t, svc.Delete(ctx, "u1", s.ID))
	_, err := svc.Get(ctx, "u1", s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "u1", s.ID), repository.ErrNotFound)
}

func TestListQueryFilter(t *testing.T) {
	svc := newShipmentService(t)
	ctx := context.Background()

	in := baseInput("TRK001")
	in.Origin = "New York, NY"
	in.Destination = "Los Angeles, CA"
	mustCreate(t, svc, "u1", in)

	in = baseInput("TRK002")
	in.Origin = "Chicago, IL"
	in.Destination = "Miami, FL"
	mustCreate(t, svc, "u1", in)

	// Case-insensitive substring on destination.
	list, err := svc.List(ctx, "u1", "angeles")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Los Angeles, CA", list[0].Destination)

	// Substring only: "la" is not contained in "Los Angeles, CA" and
	// abbreviations are not expanded.
	list, err = svc.List(ctx, "u1", "la")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Matches tracking id too.
	list, err = svc.List(ctx, "u1", "trk002")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TRK002", list[0].TrackingID)

	// Empty query returns everything unchanged.
	list, err = svc.List(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// No match.
	list, err = svc.List(ctx, "u1", "zz")
	require.NoError(t, err)
	assert.Empty(t, list)
}
