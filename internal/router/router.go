package routes

import (
	"net/http"

	swaggerHandler "github.com/swaggo/http-swagger"

	_ "github.com/oggyb/twilio-notifier/internal/docs" // swagger docs
	"github.com/oggyb/twilio-notifier/internal/response"
)

type AppDeps struct {
	Home    HomeHandler
	Message MessageHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SentAt(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /messages", d.Message.Send)
	mux.HandleFunc("GET /messages", d.Message.List)
	mux.HandleFunc("GET /messages/{id}", d.Message.Get)
	mux.HandleFunc("GET /messages/sent-at/{sid}", d.Message.SentAt)
	mux.HandleFunc("GET /stats", d.Message.Stats)

	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
