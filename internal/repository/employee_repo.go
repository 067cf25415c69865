package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	ListActiveByHub(ctx context.Context, hubID uint) ([]model.Employee, error)
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	// FindByHubAndNameFold matches active or inactive rows so callers can
	// decide between conflict and reactivation.
	FindByHubAndNameFold(ctx context.Context, hubID uint, name string) (*model.Employee, error)
	Create(ctx context.Context, e *model.Employee) error
	Save(ctx context.Context, e *model.Employee) error
}

type gormEmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &gormEmployeeRepo{db: db}
}

func (r *gormEmployeeRepo) ListActiveByHub(ctx context.Context, hubID uint) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ?", hubID, true).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *gormEmployeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormEmployeeRepo) FindByHubAndNameFold(ctx context.Context, hubID uint, name string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND LOWER(name) = LOWER(?)", hubID, name).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormEmployeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *gormEmployeeRepo) Save(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}
