package repository

import (
	"context"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
)

// ShipmentRepository defines persistence operations for shipments.
//
// Every read and mutation except the uniqueness constraint is scoped to
// an owner id; a shipment belonging to another owner behaves exactly as
// if it did not exist (ErrNotFound). TrackingID uniqueness is global
// across owners and must be enforced atomically by the implementation,
// not by a separate lookup before the write.
type ShipmentRepository interface {
	Create(ctx context.Context, s *entity.Shipment) error
	GetByOwner(ctx context.Context, ownerID, id string) (*entity.Shipment, error)
	// ListByOwner returns the owner's shipments newest first; shipments
	// created at the same instant keep their insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Shipment, error)
	Update(ctx context.Context, s *entity.Shipment) error
	Delete(ctx context.Context, ownerID, id string) error
}
