package delivery

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/twilio-notifier/internal/sms"
)

var req = sms.Request{
	AccountSID: "AC1",
	AuthToken:  "tok",
	From:       "+15005550006",
	To:         "+15005550007",
	Body:       "hello",
}

func TestFromResult_Sent(t *testing.T) {
	d := FromResult(req, &sms.Result{Sent: true, StatusCode: http.StatusCreated, MessageSID: "SM1", RawResponse: `{"sid":"SM1"}`})

	assert.Equal(t, StatusSent, d.Status)
	assert.Equal(t, "SM1", d.MessageSID)
	assert.Equal(t, http.StatusCreated, d.StatusCode)
	require.NotNil(t, d.SentAt)
	assert.Empty(t, d.Error)
	assert.Equal(t, "+15005550007", d.To)
}

func TestFromResult_Rejected(t *testing.T) {
	d := FromResult(req, &sms.Result{StatusCode: http.StatusBadRequest, RawResponse: "bad number"})

	assert.Equal(t, StatusFailed, d.Status)
	assert.Nil(t, d.SentAt)
	assert.Equal(t, "bad number", d.Error)
}

func TestFromResult_TransportFailure(t *testing.T) {
	d := FromResult(req, &sms.Result{Err: errors.New("connection refused")})

	assert.Equal(t, StatusFailed, d.Status)
	assert.Zero(t, d.StatusCode)
	assert.Equal(t, "connection refused", d.Error)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"", "SENT", "FAILED"} {
		_, ok := ParseStatus(s)
		assert.True(t, ok, s)
	}
	_, ok := ParseStatus("PENDING")
	assert.False(t, ok)
}
