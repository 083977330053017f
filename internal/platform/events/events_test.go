package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewJournalEvent_Payload(t *testing.T) {
	original := "j-1"
	at := time.Date(2024, 4, 2, 8, 30, 0, 0, time.UTC)
	j := domain.Journal{
		JournalID:         "r-1",
		WorkplaceID:       "wp-1",
		JournalDate:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode:      "USD",
		Status:            domain.Posted,
		OriginalJournalID: &original,
		Amount:            decimal.RequireFromString("100.00"),
	}

	payload, err := marshal(NewJournalEvent(JournalReversed, j, "user-1", at))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "journal.reversed", decoded["type"])
	assert.Equal(t, "2024-04-01", decoded["journalDate"])
	assert.Equal(t, "j-1", decoded["originalJournalID"])
	assert.Equal(t, "100", decoded["amount"])
}

func TestNewPublisher_SelectsDriver(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.Config
		assert func(t *testing.T, p Publisher)
	}{
		{
			name: "none",
			cfg:  config.Config{EventsDriver: config.EventsNone},
			assert: func(t *testing.T, p Publisher) {
				assert.IsType(t, NoopPublisher{}, p)
			},
		},
		{
			name: "redis",
			cfg:  config.Config{EventsDriver: config.EventsRedis, RedisURL: "redis://localhost:6379/0", RedisChannel: "journals"},
			assert: func(t *testing.T, p Publisher) {
				assert.IsType(t, &RedisPublisher{}, p)
			},
		},
		{
			name: "kafka",
			cfg:  config.Config{EventsDriver: config.EventsKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "journals"},
			assert: func(t *testing.T, p Publisher) {
				assert.IsType(t, &KafkaPublisher{}, p)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPublisher(&tc.cfg, discardLogger())
			require.NoError(t, err)
			tc.assert(t, p)
			assert.NoError(t, p.Close())
		})
	}
}

func TestNewPublisher_BadRedisURL(t *testing.T) {
	_, err := NewPublisher(&config.Config{EventsDriver: config.EventsRedis, RedisURL: "://nope"}, discardLogger())
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), JournalEvent{}))
}
