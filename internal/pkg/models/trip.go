package models

import "time"

// TripStatus represents the state of a trip
type TripStatus string

const (
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
)

// PaymentMethod is how the rider pays when a trip ends
type PaymentMethod string

const (
	PaymentWallet PaymentMethod = "wallet"
	PaymentCash   PaymentMethod = "cash"
)

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	return m == PaymentWallet || m == PaymentCash
}

// Trip is the authoritative record of a ride
type Trip struct {
	ID            string         `json:"id"`
	RequestID     *string        `json:"requestId,omitempty"`
	UserID        string         `json:"userId"`
	DriverID      *string        `json:"driverId,omitempty"`
	Pickup        string         `json:"pickup"`
	Destination   string         `json:"destination"`
	Vehicle       *string        `json:"vehicle,omitempty"`
	DistanceKm    *float64       `json:"distanceKm,omitempty"`
	Fee           int64          `json:"fee"`
	Status        TripStatus     `json:"status"`
	StartedAt     time.Time      `json:"startedAt"`
	EndedAt       *time.Time     `json:"endedAt,omitempty"`
	Rating        *int           `json:"rating,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	LastLocation  *TrackPoint    `json:"lastLocation,omitempty"`
}

// TrackPoint is one GPS sample reported during a trip
type TrackPoint struct {
	Lat   float64   `json:"lat"`
	Lng   float64   `json:"lng"`
	Speed float64   `json:"speed"`
	Ts    time.Time `json:"ts"`
}

// Track is the recorded path of a trip
type Track struct {
	Path      []TrackPoint `json:"path"`
	Last      *TrackPoint  `json:"last"`
	UpdatedAt *time.Time   `json:"updatedAt"`
}

// CostSummary is the average fee across matching trips; Average is nil
// when no trip matched
type CostSummary struct {
	Average *int64 `json:"average"`
	Count   int    `json:"count"`
}

// CreateTripInput holds the fields accepted when a trip is opened
type CreateTripInput struct {
	RequestID   *string
	UserID      string
	DriverID    *string
	Pickup      string
	Destination string
	Vehicle     *string
	DistanceKm  *float64
	Fee         int64
}

// EndTripInput holds the optional overrides applied when a trip ends
type EndTripInput struct {
	Fee           *int64
	PaymentMethod *PaymentMethod
}

// EndTripResult is a completed trip and the split posted for it, if any
type EndTripResult struct {
	Trip       *Trip       `json:"trip"`
	Settlement *Settlement `json:"-"`
}

// ShareLink is a public tracking link for a trip
type ShareLink struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}
