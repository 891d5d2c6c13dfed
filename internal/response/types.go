package response

import (
	"time"

	"github.com/oggyb/twilio-notifier/internal/domain/delivery"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// DeliveryDTO is the wire form of a delivery record.
type DeliveryDTO struct {
	ID         string     `json:"id"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	Body       string     `json:"body"`
	Status     string     `json:"status"`
	MessageSID string     `json:"messageSid,omitempty"`
	StatusCode int        `json:"statusCode"`
	Error      string     `json:"error,omitempty"`
	SentAt     *time.Time `json:"sentAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type DeliveryResponse struct {
	Success   bool        `json:"success"`
	Data      DeliveryDTO `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type DeliveryListPayload struct {
	Items []DeliveryDTO `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type DeliveryListResponse struct {
	Success   bool                `json:"success"`
	Data      DeliveryListPayload `json:"data"`
	Timestamp string              `json:"timestamp"`
}

type SentAtPayload struct {
	MessageSID string    `json:"messageSid"`
	SentAt     time.Time `json:"sentAt"`
}

type SentAtResponse struct {
	Success   bool          `json:"success"`
	Data      SentAtPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type StatsPayload struct {
	Sent   int64 `json:"sent"`
	Failed int64 `json:"failed"`
}

type StatsResponse struct {
	Success   bool         `json:"success"`
	Data      StatsPayload `json:"data"`
	Timestamp string       `json:"timestamp"`
}

func FromDelivery(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:         d.ID.String(),
		From:       d.From,
		To:         d.To,
		Body:       d.Body,
		Status:     string(d.Status),
		MessageSID: d.MessageSID,
		StatusCode: d.StatusCode,
		Error:      d.Error,
		SentAt:     d.SentAt,
		CreatedAt:  d.CreatedAt,
	}
}

func FromDeliveries(ds []*delivery.Delivery) []DeliveryDTO {
	out := make([]DeliveryDTO, len(ds))
	for i, d := range ds {
		out[i] = FromDelivery(d)
	}
	return out
}
