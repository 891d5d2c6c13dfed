// Package delivery holds the record kept for every dispatched SMS.
package delivery

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/oggyb/twilio-notifier/internal/sms"
)

type Status string

const (
	StatusSent   Status = "SENT"
	StatusFailed Status = "FAILED"
)

// ErrNotFound is returned by repositories when no delivery matches.
var ErrNotFound = errors.New("delivery not found")

// ParseStatus accepts the empty string (any status) or one of the known statuses.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "", StatusSent, StatusFailed:
		return Status(s), true
	default:
		return "", false
	}
}

// Delivery is the outcome of one request to the SMS provider. Credentials are
// never part of it.
type Delivery struct {
	ID          uuid.UUID
	From        string
	To          string
	Body        string
	Status      Status
	MessageSID  string
	StatusCode  int
	RawResponse string
	Error       string
	SentAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FromResult builds a Delivery for a request that passed validation and was dispatched.
func FromResult(req sms.Request, res *sms.Result) *Delivery {
	now := time.Now()
	d := &Delivery{
		ID:          uuid.New(),
		From:        req.From,
		To:          req.To,
		Body:        req.Body,
		StatusCode:  res.StatusCode,
		RawResponse: res.RawResponse,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if res.Sent {
		d.MarkSent(res.MessageSID, now)
		return d
	}

	reason := res.RawResponse
	if res.Err != nil {
		reason = res.Err.Error()
	}
	d.MarkFailed(reason)
	return d
}

// MarkSent records provider acceptance.
func (d *Delivery) MarkSent(sid string, at time.Time) {
	d.Status = StatusSent
	d.MessageSID = sid
	d.SentAt = &at
	d.Error = ""
}

// MarkFailed records a transport failure or a provider rejection.
func (d *Delivery) MarkFailed(reason string) {
	d.Status = StatusFailed
	d.SentAt = nil
	d.Error = reason
}
