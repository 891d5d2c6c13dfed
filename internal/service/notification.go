package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oggyb/twilio-notifier/internal/cache"
	"github.com/oggyb/twilio-notifier/internal/domain/delivery"
	"github.com/oggyb/twilio-notifier/internal/sms"
)

// sentAtTTL is how long a message SID stays resolvable through SentAt.
const sentAtTTL = 24 * time.Hour

// Account is the Twilio account and sender number the service sends from.
type Account struct {
	SID        string
	AuthToken  string
	FromNumber string
}

// Stats are running delivery counters.
type Stats struct {
	Sent   int64 `json:"sent"`
	Failed int64 `json:"failed"`
}

type NotificationService interface {
	// Send dispatches one SMS from the configured account. Validation errors
	// are returned as is. Any dispatched request yields a Delivery, whether
	// the provider accepted it or not.
	Send(ctx context.Context, to, body string) (*delivery.Delivery, error)
	Get(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error)
	List(ctx context.Context, status delivery.Status, page, limit int) ([]*delivery.Delivery, int64, error)
	SentAt(ctx context.Context, sid string) (time.Time, error)
	Stats(ctx context.Context) (Stats, error)
}

type notificationService struct {
	account Account
	sender  sms.Sender
	repo    delivery.Repository
	cache   cache.Cache
	log     logrus.FieldLogger
}

// NewNotificationService wires the service. cache may be nil, in which case
// counters and sent-at lookups are unavailable.
func NewNotificationService(
	account Account,
	sender sms.Sender,
	repo delivery.Repository,
	c cache.Cache,
	log logrus.FieldLogger,
) NotificationService {
	return &notificationService{
		account: account,
		sender:  sender,
		repo:    repo,
		cache:   c,
		log:     log.WithField("component", "notification"),
	}
}

func (s *notificationService) Send(ctx context.Context, to, body string) (*delivery.Delivery, error) {
	req := sms.Request{
		AccountSID: s.account.SID,
		AuthToken:  s.account.AuthToken,
		From:       s.account.FromNumber,
		To:         to,
		Body:       body,
	}

	res, err := s.sender.Deliver(ctx, req)
	if err != nil {
		return nil, err
	}

	d := delivery.FromResult(req, res)

	// The request already left; bookkeeping must not depend on the caller's
	// deadline, and a bookkeeping failure must not turn into a send failure.
	bctx := context.WithoutCancel(ctx)
	log := s.log.WithFields(logrus.Fields{"delivery_id": d.ID.String(), "status": d.Status})

	if err := s.repo.Save(bctx, d); err != nil {
		log.WithError(err).Error("Failed to persist delivery")
	}

	if s.cache != nil {
		if _, err := s.cache.Incr(bctx, cache.Stats.Key(string(d.Status))); err != nil {
			log.WithError(err).Warn("Failed to update delivery counter")
		}
		if d.Status == delivery.StatusSent && d.MessageSID != "" && d.SentAt != nil {
			key := cache.SentAt.Key(d.MessageSID)
			if err := s.cache.Set(bctx, key, d.SentAt.Format(time.RFC3339), sentAtTTL); err != nil {
				log.WithError(err).Warn("Failed to cache sent-at")
			}
		}
	}

	return d, nil
}

func (s *notificationService) Get(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *notificationService) List(ctx context.Context, status delivery.Status, page, limit int) ([]*delivery.Delivery, int64, error) {
	return s.repo.List(ctx, status, page, limit)
}

// SentAt resolves a recently sent message SID to its acceptance time.
func (s *notificationService) SentAt(ctx context.Context, sid string) (time.Time, error) {
	if s.cache == nil {
		return time.Time{}, delivery.ErrNotFound
	}

	v, err := s.cache.Get(ctx, cache.SentAt.Key(sid))
	if errors.Is(err, cache.ErrMiss) {
		return time.Time{}, delivery.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("lookup sent-at for %s: %w", sid, err)
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse sent-at for %s: %w", sid, err)
	}
	return t, nil
}

func (s *notificationService) Stats(ctx context.Context) (Stats, error) {
	if s.cache == nil {
		return Stats{}, nil
	}

	sent, err := s.counter(ctx, delivery.StatusSent)
	if err != nil {
		return Stats{}, err
	}
	failed, err := s.counter(ctx, delivery.StatusFailed)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Sent: sent, Failed: failed}, nil
}

func (s *notificationService) counter(ctx context.Context, status delivery.Status) (int64, error) {
	v, err := s.cache.Get(ctx, cache.Stats.Key(string(status)))
	if errors.Is(err, cache.ErrMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s counter: %w", status, err)
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s counter: %w", status, err)
	}
	return n, nil
}
