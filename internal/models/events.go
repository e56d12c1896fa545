package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionEvent is published after a successful conversion.
type ConversionEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	Provider   string          `json:"provider"`
	ClientID   string          `json:"client_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Amount     decimal.Decimal `json:"amount"`
	Result     decimal.Decimal `json:"result"`
	RateDate   Date            `json:"rate_date"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e ConversionEvent) MarshalJSON() ([]byte, error) {
	type alias ConversionEvent
	return json.Marshal(struct {
		alias
		Amount json.Number `json:"amount"`
		Result json.Number `json:"result"`
	}{alias(e), jsonNumber(e.Amount), jsonNumber(e.Result)})
}
