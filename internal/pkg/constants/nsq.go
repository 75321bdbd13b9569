package constants

// NSQ topics
const (
	TopicRideRequestCreated  = "ride_request.created"
	TopicRideRequestAccepted = "ride_request.accepted"
	TopicRideRequestDeclined = "ride_request.declined"
	TopicTripStarted         = "trip.started"
	TopicTripCompleted       = "trip.completed"
	TopicWalletTransferred   = "wallet.transferred"
	TopicWalletToppedUp      = "wallet.topped_up"
	TopicWalletDeducted      = "wallet.deducted"
)

// WebSocket events pushed to drivers
const (
	EventRideRequestCreated = "ride_request.created"
)
