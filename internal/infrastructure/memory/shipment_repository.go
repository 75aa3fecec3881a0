package memory

import (
	"context"
	"sort"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	"github.com/logitrack-io/logitrack/internal/domain/repository"
)

type ShipmentRepository struct {
	st *Store
}

func (r *ShipmentRepository) Create(ctx context.Context, s *entity.Shipment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	// Tracking ids are unique across all owners, not per owner.
	for _, existing := range r.st.shipments {
		if existing.TrackingID == s.TrackingID {
			return repository.ErrDuplicateTrackingID
		}
	}

	s.ID = r.st.newID()
	now := r.st.now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.st.shipments = append(r.st.shipments, cloneShipment(s))
	return nil
}

func (r *ShipmentRepository) GetByOwner(ctx context.Context, ownerID, id string) (*entity.Shipment, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	s := r.find(ownerID, id)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	return cloneShipment(s), nil
}

func (r *ShipmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Shipment, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	out := make([]*entity.Shipment, 0)
	for _, s := range r.st.shipments {
		if s.OwnerID == ownerID {
			out = append(out, cloneShipment(s))
		}
	}
	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ShipmentRepository) Update(ctx context.Context, s *entity.Shipment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	target := r.find(s.OwnerID, s.ID)
	if target == nil {
		return repository.ErrNotFound
	}
	for _, other := range r.st.shipments {
		if other.ID != s.ID && other.TrackingID == s.TrackingID {
			return repository.ErrDuplicateTrackingID
		}
	}

	s.CreatedAt = target.CreatedAt
	s.UpdatedAt = r.st.now()
	*target = *cloneShipment(s)
	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, ownerID, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for i, s := range r.st.shipments {
		if s.ID == id && s.OwnerID == ownerID {
			r.st.shipments = append(r.st.shipments[:i], r.st.shipments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *ShipmentRepository) find(ownerID, id string) *entity.Shipment {
	for _, s := range r.st.shipments {
		if s.ID == id && s.OwnerID == ownerID {
			return s
		}
	}
	return nil
}

var _ repository.ShipmentRepository = (*ShipmentRepository)(nil)
