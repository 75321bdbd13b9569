package constants

import "time"

// Redis key formats
const (
	// Presence registry
	KeyPresenceActor = "presence:actor:%s" // Format: presence:actor:{actor_id}
	KeyPresenceIndex = "presence:index"    // Sorted set of actor ids scored by updatedAt in ms

	// Trip tracking
	KeyTripTrack = "trip:track:%s" // Format: trip:track:{trip_id}, list of JSON track points
)

// Trip track limits
const (
	TrackMaxPoints = 500
	TrackRetention = 24 * time.Hour
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldOnline    = "online"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
