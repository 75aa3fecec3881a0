package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
)

// Store is an in-process alternative to the Postgres backend, used for
// demo deployments and tests. It mirrors the persisted layout of the
// static variant: a users collection, a shipments collection in
// insertion order, and an initialization flag guarding the demo seed.
//
// A single mutex serializes every operation, so each mutation is an
// atomic read-modify-write of the whole collection and the tracking-id
// uniqueness check cannot race with a concurrent insert.
type Store struct {
	mu        sync.Mutex
	users     []*entity.User
	shipments []*entity.Shipment
	seeded    bool
}

func NewStore() *Store {
	return &Store{}
}

// Users returns the user repository view of the store.
func (st *Store) Users() *UserRepository {
	return &UserRepository{st: st}
}

// Shipments returns the shipment repository view of the store.
func (st *Store) Shipments() *ShipmentRepository {
	return &ShipmentRepository{st: st}
}

func (st *Store) now() time.Time {
	return time.Now().UTC()
}

func (st *Store) newID() string {
	return uuid.NewString()
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func cloneShipment(s *entity.Shipment) *entity.Shipment {
	cp := *s
	if s.Weight != nil {
		w := *s.Weight
		cp.Weight = &w
	}
	if s.Dimensions != nil {
		d := *s.Dimensions
		cp.Dimensions = &d
	}
	if s.Description != nil {
		d := *s.Description
		cp.Description = &d
	}
	return &cp
}
