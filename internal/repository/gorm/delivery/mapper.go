package deliverygorm

import "github.com/oggyb/twilio-notifier/internal/domain/delivery"

func toDomain(m *DeliveryModel) *delivery.Delivery {
	return &delivery.Delivery{
		ID:          m.ID,
		From:        m.From,
		To:          m.To,
		Body:        m.Body,
		Status:      delivery.Status(m.Status),
		MessageSID:  m.MessageSID,
		StatusCode:  m.StatusCode,
		RawResponse: m.RawResponse,
		Error:       m.Error,
		SentAt:      m.SentAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainMany(models []DeliveryModel) []*delivery.Delivery {
	out := make([]*delivery.Delivery, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

func fromDomain(d *delivery.Delivery) *DeliveryModel {
	return &DeliveryModel{
		ID:          d.ID,
		From:        d.From,
		To:          d.To,
		Body:        d.Body,
		Status:      string(d.Status),
		MessageSID:  d.MessageSID,
		StatusCode:  d.StatusCode,
		RawResponse: d.RawResponse,
		Error:       d.Error,
		SentAt:      d.SentAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
