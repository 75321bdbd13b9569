package models

import "time"

// Presence is an actor's short-lived location and online heartbeat
type Presence struct {
	ID        string    `json:"id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Online    bool      `json:"online"`
	Geohash   string    `json:"geohash,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PresenceFilter narrows a presence listing
type PresenceFilter struct {
	OnlineOnly    bool
	GeohashPrefix string
}
