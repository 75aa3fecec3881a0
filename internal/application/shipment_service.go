package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
	repo "github.com/logitrack-io/logitrack/internal/domain/repository"
)

// ValidationError reports a single rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ShipmentService owns the shipment CRUD contract. Every operation is
// scoped to the authenticated owner id resolved by the auth middleware;
// the service never trusts a caller-supplied owner.
type ShipmentService struct {
	Shipments repo.ShipmentRepository
	Logger    *logrus.Logger
	ES        *elasticsearch.Client
	ESIndex   string
}

func NewShipmentService(shipments repo.ShipmentRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ShipmentService {
	return &ShipmentService{Shipments: shipments, Logger: logger, ES: es, ESIndex: esIndex}
}

type CreateShipmentInput struct {
	TrackingID  string
	Origin      string
	Destination string
	Status      entity.ShipmentStatus
	Weight      *float64
	Dimensions  *string
	Description *string
}

func (s *ShipmentService) Create(ctx context.Context, ownerID string, in CreateShipmentInput) (*entity.Shipment, error) {
	for field, v := range map[string]string{
		"trackingId":  in.TrackingID,
		"origin":      in.Origin,
		"destination": in.Destination,
		"status":      string(in.Status),
	} {
		if v == "" {
			return nil, &ValidationError{Field: field, Reason: "is required"}
		}
	}
	if !in.Status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "must be one of: Processing, In Transit, Delivered, Cancelled"}
	}
	weight, err := normalizeWeight(in.Weight)
	if err != nil {
		return nil, err
	}

	sh := &entity.Shipment{
		TrackingID:  in.TrackingID,
		Origin:      in.Origin,
		Destination: in.Destination,
		Status:      in.Status,
		Weight:      weight,
		Dimensions:  in.Dimensions,
		Description: in.Description,
		OwnerID:     ownerID,
	}
	if err := s.Shipments.Create(ctx, sh); err != nil {
		return nil, err
	}
	s.indexShipment(ctx, sh)
	return sh, nil
}

func (s *ShipmentService) Get(ctx context.Context, ownerID, id string) (*entity.Shipment, error) {
	return s.Shipments.GetByOwner(ctx, ownerID, id)
}

// List returns the owner's shipments newest first, optionally narrowed
// by a case-insensitive substring query against tracking id, origin, or
// destination. An empty query returns the full list unchanged.
func (s *ShipmentService) List(ctx context.Context, ownerID, query string) ([]*entity.Shipment, error) {
	list, err := s.Shipments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filterShipments(list, query), nil
}

type UpdateShipmentInput struct {
	// Required fields: an empty string means "not supplied" and leaves
	// the stored value untouched.
	TrackingID  string
	Origin      string
	Destination string
	Status      entity.ShipmentStatus
	// Optional fields: explicit null clears, omission leaves untouched.
	Weight      OptionalFloat
	Dimensions  OptionalString
	Description OptionalString
}

// Update applies a partial patch to an owned shipment. Unsupplied
// fields keep their prior values; tracking-id changes are re-checked
// for global uniqueness against all other records.
func (s *ShipmentService) Update(ctx context.Context, ownerID, id string, in UpdateShipmentInput) (*entity.Shipment, error) {
	cur, err := s.Shipments.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if in.TrackingID != "" {
		cur.TrackingID = in.TrackingID
	}
	if in.Origin != "" {
		cur.Origin = in.Origin
	}
	if in.Destination != "" {
		cur.Destination = in.Destination
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return nil, &ValidationError{Field: "status", Reason: "must be one of: Processing, In Transit, Delivered, Cancelled"}
		}
		cur.Status = in.Status
	}
	if in.Weight.Set {
		w, err := normalizeWeight(in.Weight.Value)
		if err != nil {
			return nil, err
		}
		cur.Weight = w
	}
	if in.Dimensions.Set {
		cur.Dimensions = in.Dimensions.Value
	}
	if in.Description.Set {
		cur.Description = in.Description.Value
	}

	if err := s.Shipments.Update(ctx, cur); err != nil {
		return nil, err
	}
	s.indexShipment(ctx, cur)
	return cur, nil
}

func (s *ShipmentService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.Shipments.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.deleteShipmentDoc(ctx, id)
	return nil
}

// normalizeWeight maps a zero or absent weight to nil (no weight
// recorded, not zero weight) and rejects negatives.
func normalizeWeight(w *float64) (*float64, error) {
	if w == nil || *w == 0 {
		return nil, nil
	}
	if *w < 0 {
		return nil, &ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	v := *w
	return &v, nil
}

func filterShipments(list []*entity.Shipment, query string) []*entity.Shipment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]*entity.Shipment, 0, len(list))
	for _, sh := range list {
		if strings.Contains(strings.ToLower(sh.TrackingID), q) ||
			strings.Contains(strings.ToLower(sh.Origin), q) ||
			strings.Contains(strings.ToLower(sh.Destination), q) {
			out = append(out, sh)
		}
	}
	return out
}
