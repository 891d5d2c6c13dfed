package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/oggyb/twilio-notifier/internal/domain/delivery"
	"github.com/oggyb/twilio-notifier/internal/request"
	"github.com/oggyb/twilio-notifier/internal/response"
	"github.com/oggyb/twilio-notifier/internal/service"
	"github.com/oggyb/twilio-notifier/internal/sms"
)

const (
	// maxRequestBody bounds a send request; the body limit is well under it.
	maxRequestBody = 64 << 10
	// maxPage keeps (page-1)*limit far from overflowing.
	maxPage = 100000
)

// MessageHandler exposes the notification service over HTTP.
type MessageHandler struct {
	svc service.NotificationService
}

func NewMessageHandler(svc service.NotificationService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Send godoc
// @Summary     Send an SMS
// @Description Sends one SMS from the configured Twilio number. Returns 502 with the delivery record when Twilio rejected the message or could not be reached.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendMessageRequest true "Recipient and text"
// @Success     201 {object} response.DeliveryResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     413 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Failure     502 {object} response.DeliveryResponse
// @Router      /messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	d, err := h.svc.Send(r.Context(), req.To, req.Body)
	if err != nil {
		var argErr *sms.ArgumentError
		if errors.As(err, &argErr) && argErr.Field == "from" {
			// The sender number comes from configuration, not from the caller.
			response.RespondError(w, http.StatusInternalServerError, "sender number is misconfigured")
			return
		}
		if errors.Is(err, sms.ErrMissingArgument) || errors.Is(err, sms.ErrInvalidArgument) {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	dto := response.FromDelivery(d)
	if d.Status != delivery.StatusSent {
		response.RespondErrorWithData(w, http.StatusBadGateway, fmt.Sprintf("delivery %s failed", d.ID), dto)
		return
	}
	response.RespondJSON(w, http.StatusCreated, dto)
}

// Get godoc
// @Summary     Get a delivery
// @Tags        messages
// @Produce     json
// @Param       id path string true "Delivery ID"
// @Success     200 {object} response.DeliveryResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     404 {object} response.JSONResponse
// @Router      /messages/{id} [get]
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid delivery id")
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, delivery.ErrNotFound) {
		response.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromDelivery(d))
}

// List godoc
// @Summary     List deliveries
// @Description Returns deliveries newest first, optionally filtered by status.
// @Tags        messages
// @Produce     json
// @Param       status query string false "SENT or FAILED"
// @Param       page   query int    false "Page number"         default(1)
// @Param       limit  query int    false "Page size (max 100)" default(20)
// @Success     200 {object} response.DeliveryListResponse
// @Failure     400 {object} response.JSONResponse
// @Router      /messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status, ok := delivery.ParseStatus(q.Get("status"))
	if !ok {
		response.RespondError(w, http.StatusBadRequest, "status must be SENT or FAILED")
		return
	}

	page := 1
	limit := 20
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = min(v, maxPage)
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	items, total, err := h.svc.List(r.Context(), status, page, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.DeliveryListPayload{
		Items: response.FromDeliveries(items),
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// SentAt godoc
// @Summary     Look up when a message was accepted
// @Description Resolves a Twilio message SID sent in the last 24 hours.
// @Tags        messages
// @Produce     json
// @Param       sid path string true "Twilio message SID"
// @Success     200 {object} response.SentAtResponse
// @Failure     404 {object} response.JSONResponse
// @Router      /messages/sent-at/{sid} [get]
func (h *MessageHandler) SentAt(w http.ResponseWriter, r *http.Request) {
	sid := r.PathValue("sid")

	at, err := h.svc.SentAt(r.Context(), sid)
	if errors.Is(err, delivery.ErrNotFound) {
		response.RespondError(w, http.StatusNotFound, "unknown message sid")
		return
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.SentAtPayload{MessageSID: sid, SentAt: at})
}

// Stats godoc
// @Summary     Delivery counters
// @Tags        messages
// @Produce     json
// @Success     200 {object} response.StatsResponse
// @Router      /stats [get]
func (h *MessageHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Stats(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, response.StatsPayload{Sent: s.Sent, Failed: s.Failed})
}
