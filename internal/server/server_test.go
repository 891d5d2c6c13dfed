package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routes "github.com/oggyb/twilio-notifier/internal/router"
)

type stubHome struct{}

func (stubHome) Index(w http.ResponseWriter, r *http.Request)  { w.WriteHeader(http.StatusOK) }
func (stubHome) Health(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

type stubMessages struct{}

func (stubMessages) Send(w http.ResponseWriter, r *http.Request)   { w.WriteHeader(http.StatusCreated) }
func (stubMessages) Get(w http.ResponseWriter, r *http.Request)    { w.WriteHeader(http.StatusOK) }
func (stubMessages) List(w http.ResponseWriter, r *http.Request)   { w.WriteHeader(http.StatusOK) }
func (stubMessages) SentAt(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
func (stubMessages) Stats(w http.ResponseWriter, r *http.Request)  { w.WriteHeader(http.StatusOK) }

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestServer_HandlerLogsRequests(t *testing.T) {
	logger, hook := test.NewNullLogger()
	srv := New(":0", routes.AppDeps{Home: stubHome{}, Message: stubMessages{}}, logger)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/messages", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, http.StatusCreated, hook.LastEntry().Data["status"])

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
