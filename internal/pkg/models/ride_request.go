package models

import "time"

// RideRequestStatus represents the state of a ride request
type RideRequestStatus string

const (
	RideRequestPending  RideRequestStatus = "pending"
	RideRequestAccepted RideRequestStatus = "accepted"
	RideRequestDeclined RideRequestStatus = "declined"
)

// Terminal reports whether no further transition is allowed
func (s RideRequestStatus) Terminal() bool {
	return s == RideRequestAccepted || s == RideRequestDeclined
}

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RideRequest is a rider's proposal to one specific driver
type RideRequest struct {
	ID                string            `json:"id"`
	DriverID          string            `json:"driverId"`
	RiderID           *string           `json:"riderId,omitempty"`
	Pickup            string            `json:"pickup"`
	Destination       string            `json:"destination"`
	PickupCoords      *Coordinates      `json:"pickupCoords,omitempty"`
	DestinationCoords *Coordinates      `json:"destinationCoords,omitempty"`
	Fare              *int64            `json:"fare,omitempty"`
	Status            RideRequestStatus `json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// CreateRideRequestInput holds the fields accepted when a rider asks a driver
type CreateRideRequestInput struct {
	DriverID          string
	RiderID           *string
	Pickup            string
	Destination       string
	PickupCoords      *Coordinates
	DestinationCoords *Coordinates
	Fare              *int64
}
