package cache

import "testing"

func TestPrefix_Key(t *testing.T) {
	if got := SentAt.Key("SM123"); got != "sms_sent_at:SM123" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := Stats.Key("SENT"); got != "sms_stats:SENT" {
		t.Fatalf("unexpected key %q", got)
	}
}
