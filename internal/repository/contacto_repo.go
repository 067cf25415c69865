package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type ContactoRepository interface {
	ListActiveByHub(ctx context.Context, hubID uint) ([]model.Contacto, error)
	FindByID(ctx context.Context, id uint) (*model.Contacto, error)
	FindByHubAndTelefono(ctx context.Context, hubID uint, telefono string) (*model.Contacto, error)
	FindActiveByHubAndTelefono(ctx context.Context, hubID uint, telefono string) (*model.Contacto, error)
	Create(ctx context.Context, contacto *model.Contacto) error
	Save(ctx context.Context, contacto *model.Contacto) error
}

type gormContactoRepo struct {
	db *gorm.DB
}

func NewContactoRepository(db *gorm.DB) ContactoRepository {
	return &gormContactoRepo{db: db}
}

func (r *gormContactoRepo) ListActiveByHub(ctx context.Context, hubID uint) ([]model.Contacto, error) {
	var contactos []model.Contacto
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ?", hubID, true).
		Order("nombre ASC").
		Find(&contactos).Error
	return contactos, err
}

func (r *gormContactoRepo) FindByID(ctx context.Context, id uint) (*model.Contacto, error) {
	var contacto model.Contacto
	err := r.db.WithContext(ctx).First(&contacto, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contacto, nil
}

func (r *gormContactoRepo) FindByHubAndTelefono(ctx context.Context, hubID uint, telefono string) (*model.Contacto, error) {
	var contacto model.Contacto
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND telefono = ?", hubID, telefono).
		First(&contacto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contacto, nil
}

func (r *gormContactoRepo) FindActiveByHubAndTelefono(ctx context.Context, hubID uint, telefono string) (*model.Contacto, error) {
	var contacto model.Contacto
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND telefono = ? AND active = ?", hubID, telefono, true).
		First(&contacto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contacto, nil
}

func (r *gormContactoRepo) Create(ctx context.Context, contacto *model.Contacto) error {
	return r.db.WithContext(ctx).Create(contacto).Error
}

func (r *gormContactoRepo) Save(ctx context.Context, contacto *model.Contacto) error {
	return r.db.WithContext(ctx).Save(contacto).Error
}
