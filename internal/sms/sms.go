// Package sms sends single SMS messages through the Twilio REST API.
package sms

import (
	"context"
	"net/http"
)

// Sender is the contract for sending one SMS with per-call account credentials.
type Sender interface {
	// Send validates the arguments, posts the message and reports whether the
	// provider accepted it. The error is non-nil only when validation fails,
	// in which case nothing was sent.
	Send(ctx context.Context, accountSID, authToken, from, to, body string) (bool, error)

	// Deliver is Send with the full outcome of the request.
	Deliver(ctx context.Context, req Request) (*Result, error)
}

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request holds the parameters of a single outbound message.
type Request struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
	Body       string
}

// Result describes what happened after a validated request was dispatched.
type Result struct {
	// Sent is true when the provider answered with a 2xx status.
	Sent bool

	// StatusCode is zero when no response was received.
	StatusCode int

	// RawResponse is the response body as text.
	RawResponse string

	// MessageSID is taken from the response body when present. It is empty
	// when the body could not be decoded.
	MessageSID string

	// Err holds the transport failure, if any.
	Err error
}
