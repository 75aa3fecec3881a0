package memory

import (
	"time"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/pkg/helpers"
)

func ptr[T any](v T) *T { return &v }

// SeedDemo loads the demo account and its sample shipments. The seed
// runs at most once per store instance; later calls are no-ops and
// return false.
func (st *Store) SeedDemo() (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.seeded {
		return false, nil
	}

	hash, err := helpers.HashPassword("demo123")
	if err != nil {
		return false, err
	}

	now := st.now()
	user := &entity.User{
		ID:        st.newID(),
		Email:     "demo@example.com",
		Password:  hash,
		Name:      "Demo User",
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.users = append(st.users, user)

	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}
	demo := []*entity.Shipment{
		{
			ID:          st.newID(),
			TrackingID:  "TRK001",
			Origin:      "New York, NY",
			Destination: "Los Angeles, CA",
			Status:      entity.StatusInTransit,
			Weight:      ptr(25.5),
			Dimensions:  ptr("12x10x8"),
			Description: ptr("Electronics Package"),
			OwnerID:     user.ID,
			CreatedAt:   day("2024-01-15"),
			UpdatedAt:   day("2024-01-15"),
		},
		{
			ID:          st.newID(),
			TrackingID:  "TRK002",
			Origin:      "Chicago, IL",
			Destination: "Miami, FL",
			Status:      entity.StatusDelivered,
			Weight:      ptr(15.2),
			Dimensions:  ptr("8x6x4"),
			Description: ptr("Documents"),
			OwnerID:     user.ID,
			CreatedAt:   day("2024-01-10"),
			UpdatedAt:   day("2024-01-12"),
		},
		{
			ID:          st.newID(),
			TrackingID:  "TRK003",
			Origin:      "Seattle, WA",
			Destination: "Boston, MA",
			Status:      entity.StatusProcessing,
			Weight:      ptr(40.0),
			Dimensions:  ptr("20x15x10"),
			Description: ptr("Furniture Parts"),
			OwnerID:     user.ID,
			CreatedAt:   day("2024-01-20"),
			UpdatedAt:   day("2024-01-20"),
		},
	}
	st.shipments = append(st.shipments, demo...)
	st.seeded = true
	return true, nil
}
