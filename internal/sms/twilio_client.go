package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the versioned root of the Twilio REST API.
const DefaultBaseURL = "https://api.twilio.com/2010-04-01"

var errNoResponse = errors.New("transport returned no response")

// maxResponseSize caps how much of a response body is read into memory.
const maxResponseSize = 64 << 10

var _ Sender = (*TwilioClient)(nil)

// TwilioClient posts messages to the Twilio Messages resource using HTTP Basic
// authentication. It keeps no per-call state and is safe for concurrent use as
// long as the underlying Doer is.
type TwilioClient struct {
	baseURL string
	doer    Doer
	log     logrus.FieldLogger
}

// Option customizes a TwilioClient.
type Option func(*TwilioClient)

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *TwilioClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// NewTwilioClient creates a client that sends through doer and logs to log.
// A nil doer falls back to http.DefaultClient; a nil log discards output.
func NewTwilioClient(doer Doer, log logrus.FieldLogger, opts ...Option) *TwilioClient {
	if doer == nil {
		doer = http.DefaultClient
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	c := &TwilioClient{
		baseURL: DefaultBaseURL,
		doer:    doer,
		log:     log.WithField("component", "twilio"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send implements Sender.Send.
func (c *TwilioClient) Send(ctx context.Context, accountSID, authToken, from, to, body string) (bool, error) {
	res, err := c.Deliver(ctx, Request{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		To:         to,
		Body:       body,
	})
	if err != nil {
		return false, err
	}
	return res.Sent, nil
}

// Deliver implements Sender.Deliver. Validation errors are returned before any
// network activity. Everything that goes wrong afterwards is logged and
// reported through the Result.
func (c *TwilioClient) Deliver(ctx context.Context, r Request) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("build twilio request: %w", err)
	}

	log := c.log.WithField("to", r.To)

	resp, err := c.doer.Do(req)
	if err == nil && resp == nil {
		err = errNoResponse
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			err = fmt.Errorf("twilio request timeout or canceled: %w", err)
		} else {
			err = fmt.Errorf("twilio request failed: %w", err)
		}
		log.WithError(err).Error("Exception when communicating with Twilio")
		return &Result{Err: err}, nil
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	res := &Result{
		StatusCode:  resp.StatusCode,
		RawResponse: string(raw),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		entry := log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"response":    res.RawResponse,
		})
		if readErr != nil {
			entry = entry.WithField("read_error", readErr.Error())
		}
		entry.Errorf("Error Twilio API (%d): %s", resp.StatusCode, res.RawResponse)
		return res, nil
	}

	res.Sent = true
	res.MessageSID = messageSID(raw)
	log.WithField("sid", res.MessageSID).Infof("SMS sent successfully to %s", r.To)
	return res, nil
}

// newRequest builds the authenticated, form-encoded POST for r.
func (c *TwilioClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, url.PathEscape(r.AccountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encodeForm(r)))
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(r.AccountSID, r.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// encodeForm writes From, To and Body in that order. url.Values.Encode would
// sort the keys.
func encodeForm(r Request) string {
	var b strings.Builder
	b.WriteString("From=")
	b.WriteString(url.QueryEscape(r.From))
	b.WriteString("&To=")
	b.WriteString(url.QueryEscape(r.To))
	b.WriteString("&Body=")
	b.WriteString(url.QueryEscape(r.Body))
	return b.String()
}

// messageSID pulls the "sid" field out of a Messages resource, if any.
func messageSID(raw []byte) string {
	var parsed struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	return parsed.SID
}
