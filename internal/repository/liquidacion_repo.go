package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type LiquidacionRepository interface {
	ListRutasByHub(ctx context.Context, hubID uint) ([]model.LiquidacionRuta, error)
	FindRutaByID(ctx context.Context, id uint) (*model.LiquidacionRuta, error)
	FindRutaByHubAndCodeFold(ctx context.Context, hubID uint, code string) (*model.LiquidacionRuta, error)
	CreateRuta(ctx context.Context, ruta *model.LiquidacionRuta) error
	SaveRuta(ctx context.Context, ruta *model.LiquidacionRuta) error

	ListEntriesByRouteAndMonth(ctx context.Context, routeID uint, dayPrefix string) ([]model.LiquidacionEntry, error)
	FindEntryByRouteAndDay(ctx context.Context, routeID uint, day string) (*model.LiquidacionEntry, error)
	CreateEntry(ctx context.Context, entry *model.LiquidacionEntry) error
	SaveEntry(ctx context.Context, entry *model.LiquidacionEntry) error
	DeleteEntry(ctx context.Context, entry *model.LiquidacionEntry) error
}

type gormLiquidacionRepo struct {
	db *gorm.DB
}

func NewLiquidacionRepository(db *gorm.DB) LiquidacionRepository {
	return &gormLiquidacionRepo{db: db}
}

func (r *gormLiquidacionRepo) ListRutasByHub(ctx context.Context, hubID uint) ([]model.LiquidacionRuta, error) {
	var rutas []model.LiquidacionRuta
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ?", hubID, true).
		Order("code ASC").
		Find(&rutas).Error
	return rutas, err
}

func (r *gormLiquidacionRepo) FindRutaByID(ctx context.Context, id uint) (*model.LiquidacionRuta, error) {
	var ruta model.LiquidacionRuta
	err := r.db.WithContext(ctx).First(&ruta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ruta, nil
}

func (r *gormLiquidacionRepo) FindRutaByHubAndCodeFold(ctx context.Context, hubID uint, code string) (*model.LiquidacionRuta, error) {
	var ruta model.LiquidacionRuta
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND LOWER(code) = LOWER(?)", hubID, code).
		First(&ruta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ruta, nil
}

func (r *gormLiquidacionRepo) CreateRuta(ctx context.Context, ruta *model.LiquidacionRuta) error {
	return r.db.WithContext(ctx).Create(ruta).Error
}

func (r *gormLiquidacionRepo) SaveRuta(ctx context.Context, ruta *model.LiquidacionRuta) error {
	return r.db.WithContext(ctx).Save(ruta).Error
}

func (r *gormLiquidacionRepo) ListEntriesByRouteAndMonth(ctx context.Context, routeID uint, dayPrefix string) ([]model.LiquidacionEntry, error) {
	var entries []model.LiquidacionEntry
	err := r.db.WithContext(ctx).
		Where("route_id = ? AND day LIKE ?", routeID, dayPrefix+"%").
		Order("day ASC").
		Find(&entries).Error
	return entries, err
}

func (r *gormLiquidacionRepo) FindEntryByRouteAndDay(ctx context.Context, routeID uint, day string) (*model.LiquidacionEntry, error) {
	var entry model.LiquidacionEntry
	err := r.db.WithContext(ctx).
		Where("route_id = ? AND day = ?", routeID, day).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *gormLiquidacionRepo) CreateEntry(ctx context.Context, entry *model.LiquidacionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *gormLiquidacionRepo) SaveEntry(ctx context.Context, entry *model.LiquidacionEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *gormLiquidacionRepo) DeleteEntry(ctx context.Context, entry *model.LiquidacionEntry) error {
	return r.db.WithContext(ctx).Delete(entry).Error
}
