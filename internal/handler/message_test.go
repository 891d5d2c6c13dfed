package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/twilio-notifier/internal/db"
	"github.com/oggyb/twilio-notifier/internal/domain/delivery"
	"github.com/oggyb/twilio-notifier/internal/response"
	routes "github.com/oggyb/twilio-notifier/internal/router"
	"github.com/oggyb/twilio-notifier/internal/service"
	"github.com/oggyb/twilio-notifier/internal/sms"
)

type fakeService struct {
	sendResult *delivery.Delivery
	sendErr    error
	stored     map[uuid.UUID]*delivery.Delivery
	sentAt     map[string]time.Time
	stats      service.Stats

	listStatus delivery.Status
	listPage   int
	listLimit  int
}

func (f *fakeService) Send(ctx context.Context, to, body string) (*delivery.Delivery, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return f.sendResult, nil
}

func (f *fakeService) Get(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	d, ok := f.stored[id]
	if !ok {
		return nil, delivery.ErrNotFound
	}
	return d, nil
}

func (f *fakeService) List(ctx context.Context, status delivery.Status, page, limit int) ([]*delivery.Delivery, int64, error) {
	f.listStatus, f.listPage, f.listLimit = status, page, limit
	var out []*delivery.Delivery
	for _, d := range f.stored {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeService) SentAt(ctx context.Context, sid string) (time.Time, error) {
	t, ok := f.sentAt[sid]
	if !ok {
		return time.Time{}, delivery.ErrNotFound
	}
	return t, nil
}

func (f *fakeService) Stats(ctx context.Context) (service.Stats, error) {
	return f.stats, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func newMux(svc service.NotificationService, deps map[string]db.Pinger) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, routes.AppDeps{
		Home:    NewHomeHandler(deps),
		Message: NewMessageHandler(svc),
	})
	return mux
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, response.JSONResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var env response.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func sentDelivery() *delivery.Delivery {
	now := time.Now()
	return &delivery.Delivery{
		ID:         uuid.New(),
		From:       "+15005550006",
		To:         "+15005550007",
		Body:       "hello",
		Status:     delivery.StatusSent,
		MessageSID: "SM1",
		StatusCode: http.StatusCreated,
		SentAt:     &now,
		CreatedAt:  now,
	}
}

func TestSend_Created(t *testing.T) {
	d := sentDelivery()
	mux := newMux(&fakeService{sendResult: d}, nil)

	rec, env := do(t, mux, http.MethodPost, "/messages", `{"to":"+15005550007","body":"hello"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, d.ID.String(), data["id"])
	assert.Equal(t, "SENT", data["status"])
}

func TestSend_ValidationError(t *testing.T) {
	err := &sms.ArgumentError{Field: "to", Reason: "only digits", Kind: sms.ErrInvalidArgument}
	mux := newMux(&fakeService{sendErr: err}, nil)

	rec, env := do(t, mux, http.MethodPost, "/messages", `{"to":"abc","body":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "to")
}

func TestSend_InvalidJSON(t *testing.T) {
	mux := newMux(&fakeService{}, nil)

	rec, env := do(t, mux, http.MethodPost, "/messages", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", env.Error.Message)
}

func TestSend_ProviderFailure(t *testing.T) {
	d := sentDelivery()
	d.MarkFailed("bad number")
	mux := newMux(&fakeService{sendResult: d}, nil)

	rec, env := do(t, mux, http.MethodPost, "/messages", `{"to":"+15005550007","body":"hello"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "FAILED", data["status"])
	assert.Equal(t, "bad number", data["error"])
}

func TestSend_MisconfiguredSenderNumber(t *testing.T) {
	err := &sms.ArgumentError{Field: "from", Reason: "is too long, max length is 16", Kind: sms.ErrInvalidArgument}
	mux := newMux(&fakeService{sendErr: err}, nil)

	rec, env := do(t, mux, http.MethodPost, "/messages", `{"to":"+15005550007","body":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.NotContains(t, env.Error.Message, "invalid argument")
}

func TestSend_BodyTooLarge(t *testing.T) {
	mux := newMux(&fakeService{sendResult: sentDelivery()}, nil)
	payload := `{"to":"+15005550007","body":"` + strings.Repeat("a", maxRequestBody) + `"}`

	rec, env := do(t, mux, http.MethodPost, "/messages", payload)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, env.Success)
}

func TestSend_UnexpectedError(t *testing.T) {
	mux := newMux(&fakeService{sendErr: errors.New("boom")}, nil)

	rec, _ := do(t, mux, http.MethodPost, "/messages", `{"to":"+15005550007","body":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGet(t *testing.T) {
	d := sentDelivery()
	mux := newMux(&fakeService{stored: map[uuid.UUID]*delivery.Delivery{d.ID: d}}, nil)

	rec, _ := do(t, mux, http.MethodGet, "/messages/"+d.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, mux, http.MethodGet, "/messages/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, mux, http.MethodGet, "/messages/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_Pagination(t *testing.T) {
	svc := &fakeService{stored: map[uuid.UUID]*delivery.Delivery{}}
	mux := newMux(svc, nil)

	rec, _ := do(t, mux, http.MethodGet, "/messages?status=FAILED&page=3&limit=500", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, delivery.StatusFailed, svc.listStatus)
	assert.Equal(t, 3, svc.listPage)
	assert.Equal(t, 20, svc.listLimit)

	rec, _ = do(t, mux, http.MethodGet, "/messages?page=9223372036854775807", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, maxPage, svc.listPage)

	rec, _ = do(t, mux, http.MethodGet, "/messages?status=QUEUED", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSentAt(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mux := newMux(&fakeService{sentAt: map[string]time.Time{"SM1": at}}, nil)

	rec, env := do(t, mux, http.MethodGet, "/messages/sent-at/SM1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-01-02T03:04:05Z", env.Data.(map[string]interface{})["sentAt"])

	rec, _ = do(t, mux, http.MethodGet, "/messages/sent-at/SM2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	mux := newMux(&fakeService{stats: service.Stats{Sent: 4, Failed: 1}}, nil)

	rec, env := do(t, mux, http.MethodGet, "/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]interface{})
	assert.EqualValues(t, 4, data["sent"])
	assert.EqualValues(t, 1, data["failed"])
}

func TestHealth(t *testing.T) {
	mux := newMux(&fakeService{}, map[string]db.Pinger{"postgres": fakePinger{}, "redis": fakePinger{}})
	rec, env := do(t, mux, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	mux = newMux(&fakeService{}, map[string]db.Pinger{"redis": fakePinger{err: errors.New("refused")}})
	rec, env = do(t, mux, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	checks := env.Data.(map[string]interface{})["checks"].(map[string]interface{})
	assert.Equal(t, "refused", checks["redis"])
}

func TestUnknownRoute(t *testing.T) {
	mux := newMux(&fakeService{}, nil)

	rec, env := do(t, mux, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", env.Error.Message)
}
