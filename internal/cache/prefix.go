package cache

import "fmt"

type Prefix string

const (
	// SentAt maps a Twilio message SID to the RFC 3339 time it was accepted.
	SentAt Prefix = "sms_sent_at"
	// Stats holds delivery counters keyed by status.
	Stats Prefix = "sms_stats"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
