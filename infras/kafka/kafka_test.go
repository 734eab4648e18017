package kafka_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/config"
	"vetclinic/infras/kafka"
)

type visitEvent struct {
	Type    string `json:"type"`
	VisitID string `json:"visit_id"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "visit-1", Value: visitEvent{Type: "visit.created", VisitID: "visit-1"}}

	encoded, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("visit-1"), encoded.Key)
	assert.JSONEq(t, `{"type":"visit.created","visit_id":"visit-1"}`, string(encoded.Value))

	key, decoded, err := kafka.DecodeKafkaMessage[visitEvent](encoded)
	require.NoError(t, err)
	assert.Equal(t, "visit-1", key)
	assert.Equal(t, "visit.created", decoded.Type)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "visit-events", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
