package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type RepartoRepository interface {
	ListActiveByHubAndRoute(ctx context.Context, hubID, routeID uint) ([]model.RepartoCliente, error)
	FindByID(ctx context.Context, id uint) (*model.RepartoCliente, error)
	FindByHubRouteAndCodigo(ctx context.Context, hubID, routeID uint, codigo string) (*model.RepartoCliente, error)
	Create(ctx context.Context, cliente *model.RepartoCliente) error
	Save(ctx context.Context, cliente *model.RepartoCliente) error
}

type gormRepartoRepo struct {
	db *gorm.DB
}

func NewRepartoRepository(db *gorm.DB) RepartoRepository {
	return &gormRepartoRepo{db: db}
}

func (r *gormRepartoRepo) ListActiveByHubAndRoute(ctx context.Context, hubID, routeID uint) ([]model.RepartoCliente, error) {
	var clientes []model.RepartoCliente
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND route_id = ? AND activo = ?", hubID, routeID, true).
		Order("nombre ASC").
		Find(&clientes).Error
	return clientes, err
}

func (r *gormRepartoRepo) FindByID(ctx context.Context, id uint) (*model.RepartoCliente, error) {
	var cliente model.RepartoCliente
	err := r.db.WithContext(ctx).First(&cliente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *gormRepartoRepo) FindByHubRouteAndCodigo(ctx context.Context, hubID, routeID uint, codigo string) (*model.RepartoCliente, error) {
	var cliente model.RepartoCliente
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND route_id = ? AND cliente_codigo = ?", hubID, routeID, codigo).
		First(&cliente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *gormRepartoRepo) Create(ctx context.Context, cliente *model.RepartoCliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *gormRepartoRepo) Save(ctx context.Context, cliente *model.RepartoCliente) error {
	return r.db.WithContext(ctx).Save(cliente).Error
}
