package entity

import (
	"time"
)

// ShipmentStatus is the closed set of states a shipment can be in.
type ShipmentStatus string

const (
	StatusProcessing ShipmentStatus = "Processing"
	StatusInTransit  ShipmentStatus = "In Transit"
	StatusDelivered  ShipmentStatus = "Delivered"
	StatusCancelled  ShipmentStatus = "Cancelled"
)

// Valid reports whether s is one of the allowed statuses.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Shipment is a single tracked consignment owned by exactly one user.
// TrackingID is caller-chosen and unique across the whole store, not
// just per owner. Optional fields are nil when absent; a nil Weight is
// "no weight recorded", which is distinct from zero.
type Shipment struct {
	ID          string
	TrackingID  string
	Origin      string
	Destination string
	Status      ShipmentStatus
	Weight      *float64
	Dimensions  *string
	Description *string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
