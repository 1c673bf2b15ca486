package kafka

import (
	"RomXD/internal/pkg/consts"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msgWith(value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Value: []byte(value)}
}

func TestToEngagementEventValid(t *testing.T) {
	event, err := ToEngagementEvent(msgWith(`{"gameId":"g1","type":"vote","timestamp":1756684800000}`))
	require.NoError(t, err)
	assert.Equal(t, "g1", event.GameID)
	assert.Equal(t, consts.EventVote, event.Type)
	assert.Equal(t, int64(1756684800000), event.Timestamp)
}

func TestToEngagementEventMissingGameID(t *testing.T) {
	_, err := ToEngagementEvent(msgWith(`{"type":"download","timestamp":1}`))
	assert.Error(t, err)
}

func TestToEngagementEventUnknownType(t *testing.T) {
	_, err := ToEngagementEvent(msgWith(`{"gameId":"g1","type":"view"}`))
	assert.Error(t, err)
}

func TestToEngagementEventBadJSON(t *testing.T) {
	_, err := ToEngagementEvent(msgWith(`not-json`))
	assert.Error(t, err)
}
