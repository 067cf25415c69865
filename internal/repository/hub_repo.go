package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type HubRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Hub, error)
	// FindByNameFold matches the hub name case-insensitively.
	FindByNameFold(ctx context.Context, name string) (*model.Hub, error)
	Create(ctx context.Context, hub *model.Hub) error
	List(ctx context.Context) ([]model.Hub, error)
}

type gormHubRepo struct {
	db *gorm.DB
}

func NewHubRepository(db *gorm.DB) HubRepository {
	return &gormHubRepo{db: db}
}

func (r *gormHubRepo) FindByID(ctx context.Context, id uint) (*model.Hub, error) {
	var h model.Hub
	err := r.db.WithContext(ctx).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *gormHubRepo) FindByNameFold(ctx context.Context, name string) (*model.Hub, error) {
	var h model.Hub
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *gormHubRepo) Create(ctx context.Context, hub *model.Hub) error {
	return r.db.WithContext(ctx).Create(hub).Error
}

func (r *gormHubRepo) List(ctx context.Context) ([]model.Hub, error) {
	var hubs []model.Hub
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hubs).Error
	return hubs, err
}
