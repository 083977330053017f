// Package events publishes journal lifecycle events to an external broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/shopspring/decimal"
)

// EventType names a journal lifecycle transition.
type EventType string

const (
	JournalCreated  EventType = "journal.created"
	JournalUpdated  EventType = "journal.updated"
	JournalPosted   EventType = "journal.posted"
	JournalReversed EventType = "journal.reversed"
)

// JournalEvent is the payload sent for every journal write.
type JournalEvent struct {
	Type              EventType            `json:"type"`
	WorkplaceID       string               `json:"workplaceID"`
	JournalID         string               `json:"journalID"`
	OriginalJournalID *string              `json:"originalJournalID,omitempty"`
	Status            domain.JournalStatus `json:"status"`
	JournalDate       string               `json:"journalDate"`
	CurrencyCode      string               `json:"currencyCode"`
	Amount            decimal.Decimal      `json:"amount"`
	UserID            string               `json:"userID"`
	OccurredAt        time.Time            `json:"occurredAt"`
}

// NewJournalEvent describes journal j after a transition of type t.
func NewJournalEvent(t EventType, j domain.Journal, userID string, at time.Time) JournalEvent {
	return JournalEvent{
		Type:              t,
		WorkplaceID:       j.WorkplaceID,
		JournalID:         j.JournalID,
		OriginalJournalID: j.OriginalJournalID,
		Status:            j.Status,
		JournalDate:       j.JournalDate.Format("2006-01-02"),
		CurrencyCode:      j.CurrencyCode,
		Amount:            j.Amount,
		UserID:            userID,
		OccurredAt:        at,
	}
}

// Publisher delivers journal events. Publish is best effort: the ledger
// write has already committed when it is called.
type Publisher interface {
	Publish(ctx context.Context, event JournalEvent) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, JournalEvent) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

// NewPublisher builds the publisher selected by cfg.EventsDriver.
func NewPublisher(cfg *config.Config, logger *slog.Logger) (Publisher, error) {
	switch cfg.EventsDriver {
	case config.EventsRedis:
		p, err := NewRedisPublisher(cfg.RedisURL, cfg.RedisChannel)
		if err != nil {
			return nil, err
		}
		logger.Info("Journal events go to redis", slog.String("channel", cfg.RedisChannel))
		return p, nil
	case config.EventsKafka:
		logger.Info("Journal events go to kafka", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaTopic))
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger), nil
	default:
		return NoopPublisher{}, nil
	}
}

func marshal(event JournalEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal journal event: %w", err)
	}
	return payload, nil
}
