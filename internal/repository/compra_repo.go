package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type CompraRepository interface {
	ListActiveByHub(ctx context.Context, hubID uint) ([]model.HubCompra, error)
	FindByID(ctx context.Context, id uint) (*model.HubCompra, error)
	Create(ctx context.Context, compra *model.HubCompra) error
	Save(ctx context.Context, compra *model.HubCompra) error
	Delete(ctx context.Context, compra *model.HubCompra) error
}

type gormCompraRepo struct {
	db *gorm.DB
}

func NewCompraRepository(db *gorm.DB) CompraRepository {
	return &gormCompraRepo{db: db}
}

func (r *gormCompraRepo) ListActiveByHub(ctx context.Context, hubID uint) ([]model.HubCompra, error) {
	var compras []model.HubCompra
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ?", hubID, true).
		Order("id ASC").
		Find(&compras).Error
	return compras, err
}

func (r *gormCompraRepo) FindByID(ctx context.Context, id uint) (*model.HubCompra, error) {
	var compra model.HubCompra
	err := r.db.WithContext(ctx).First(&compra, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &compra, nil
}

func (r *gormCompraRepo) Create(ctx context.Context, compra *model.HubCompra) error {
	return r.db.WithContext(ctx).Create(compra).Error
}

func (r *gormCompraRepo) Save(ctx context.Context, compra *model.HubCompra) error {
	return r.db.WithContext(ctx).Save(compra).Error
}

func (r *gormCompraRepo) Delete(ctx context.Context, compra *model.HubCompra) error {
	return r.db.WithContext(ctx).Delete(compra).Error
}
