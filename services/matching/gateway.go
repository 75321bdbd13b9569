package matching

// Notifier pushes an event to the live sessions of a subscriber
type Notifier interface {
	Notify(subscriberID, event string, data interface{}) (int, error)
}
