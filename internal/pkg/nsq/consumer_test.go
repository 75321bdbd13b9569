package nsq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalMessage(t *testing.T) {
	var out struct {
		Type string `json:"type"`
	}

	assert.NoError(t, UnmarshalMessage([]byte(`{"type":"ride_request.created"}`), &out))
	assert.Equal(t, "ride_request.created", out.Type)

	err := UnmarshalMessage([]byte(`{`), &out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal message")
}

func TestDiscardPublisher(t *testing.T) {
	var p Publisher = DiscardPublisher{}
	assert.NoError(t, p.Publish("trip.completed", map[string]string{"id": "t1"}))
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(topic string, message interface{}) error {
	f.calls++
	return assert.AnError
}

func TestPublishEvent_SwallowsPublishError(t *testing.T) {
	p := &failingPublisher{}

	assert.NotPanics(t, func() { PublishEvent(p, "trip.completed", map[string]string{"id": "t1"}) })
	assert.Equal(t, 1, p.calls)

	assert.NotPanics(t, func() { PublishEvent(nil, "trip.completed", nil) })
}
