package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type KilosLitrosRepository interface {
	ListActiveByHub(ctx context.Context, hubID uint) ([]model.KilosLitros, error)
	ListActiveByHubAndMonth(ctx context.Context, hubID uint, year, month int) ([]model.KilosLitros, error)
	FindByID(ctx context.Context, id uint) (*model.KilosLitros, error)
	FindActiveByHubDayRuta(ctx context.Context, hubID uint, day string, rutaNumero int) (*model.KilosLitros, error)
	Create(ctx context.Context, kl *model.KilosLitros) error
	Save(ctx context.Context, kl *model.KilosLitros) error
	Delete(ctx context.Context, kl *model.KilosLitros) error
}

type gormKilosLitrosRepo struct {
	db *gorm.DB
}

func NewKilosLitrosRepository(db *gorm.DB) KilosLitrosRepository {
	return &gormKilosLitrosRepo{db: db}
}

func (r *gormKilosLitrosRepo) ListActiveByHub(ctx context.Context, hubID uint) ([]model.KilosLitros, error) {
	var rows []model.KilosLitros
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ?", hubID, true).
		Order("day ASC, ruta_numero ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormKilosLitrosRepo) ListActiveByHubAndMonth(ctx context.Context, hubID uint, year, month int) ([]model.KilosLitros, error) {
	var rows []model.KilosLitros
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ? AND year = ? AND month = ?", hubID, true, year, month).
		Order("day ASC, ruta_numero ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormKilosLitrosRepo) FindByID(ctx context.Context, id uint) (*model.KilosLitros, error) {
	var kl model.KilosLitros
	err := r.db.WithContext(ctx).First(&kl, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kl, nil
}

func (r *gormKilosLitrosRepo) FindActiveByHubDayRuta(ctx context.Context, hubID uint, day string, rutaNumero int) (*model.KilosLitros, error) {
	var kl model.KilosLitros
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND day = ? AND ruta_numero = ? AND active = ?", hubID, day, rutaNumero, true).
		First(&kl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kl, nil
}

func (r *gormKilosLitrosRepo) Create(ctx context.Context, kl *model.KilosLitros) error {
	return r.db.WithContext(ctx).Create(kl).Error
}

func (r *gormKilosLitrosRepo) Save(ctx context.Context, kl *model.KilosLitros) error {
	return r.db.WithContext(ctx).Save(kl).Error
}

func (r *gormKilosLitrosRepo) Delete(ctx context.Context, kl *model.KilosLitros) error {
	return r.db.WithContext(ctx).Delete(kl).Error
}
