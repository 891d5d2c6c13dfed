package deliverygorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/twilio-notifier/internal/domain/delivery"
)

// Repository is the GORM implementation of delivery.Repository.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the deliveries table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DeliveryModel{})
}

func (r *Repository) Save(ctx context.Context, d *delivery.Delivery) error {
	return r.db.WithContext(ctx).Create(fromDomain(d)).Error
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	var m DeliveryModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, delivery.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&m), nil
}

func (r *Repository) List(ctx context.Context, status delivery.Status, page, limit int) ([]*delivery.Delivery, int64, error) {
	var models []DeliveryModel
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	if offset < 0 || offset/limit != page-1 {
		return nil, 0, fmt.Errorf("page %d out of range", page)
	}

	query := r.db.WithContext(ctx).Model(&DeliveryModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

var _ delivery.Repository = (*Repository)(nil)
