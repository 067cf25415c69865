package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type FlotaRepository interface {
	ListActiveVehiculosByHub(ctx context.Context, hubID uint) ([]model.FlotaVehiculo, error)
	FindVehiculoByID(ctx context.Context, id uint) (*model.FlotaVehiculo, error)
	FindVehiculoByHubAndMatricula(ctx context.Context, hubID uint, matricula string) (*model.FlotaVehiculo, error)
	CreateVehiculo(ctx context.Context, v *model.FlotaVehiculo) error
	SaveVehiculo(ctx context.Context, v *model.FlotaVehiculo) error

	ListIncidenciasByVehiculo(ctx context.Context, vehiculoID uint) ([]model.FlotaIncidencia, error)
	FindIncidenciaByID(ctx context.Context, id uint) (*model.FlotaIncidencia, error)
	CreateIncidencia(ctx context.Context, inc *model.FlotaIncidencia) error
	SaveIncidencia(ctx context.Context, inc *model.FlotaIncidencia) error
	DeleteIncidencia(ctx context.Context, inc *model.FlotaIncidencia) error
}

type gormFlotaRepo struct {
	db *gorm.DB
}

func NewFlotaRepository(db *gorm.DB) FlotaRepository {
	return &gormFlotaRepo{db: db}
}

func (r *gormFlotaRepo) ListActiveVehiculosByHub(ctx context.Context, hubID uint) ([]model.FlotaVehiculo, error) {
	var vehiculos []model.FlotaVehiculo
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND active = ?", hubID, true).
		Order("matricula ASC").
		Find(&vehiculos).Error
	return vehiculos, err
}

func (r *gormFlotaRepo) FindVehiculoByID(ctx context.Context, id uint) (*model.FlotaVehiculo, error) {
	var v model.FlotaVehiculo
	err := r.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *gormFlotaRepo) FindVehiculoByHubAndMatricula(ctx context.Context, hubID uint, matricula string) (*model.FlotaVehiculo, error) {
	var v model.FlotaVehiculo
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND matricula = ?", hubID, matricula).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *gormFlotaRepo) CreateVehiculo(ctx context.Context, v *model.FlotaVehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *gormFlotaRepo) SaveVehiculo(ctx context.Context, v *model.FlotaVehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *gormFlotaRepo) ListIncidenciasByVehiculo(ctx context.Context, vehiculoID uint) ([]model.FlotaIncidencia, error) {
	var incidencias []model.FlotaIncidencia
	err := r.db.WithContext(ctx).
		Where("vehiculo_id = ?", vehiculoID).
		Order("fecha DESC, id DESC").
		Find(&incidencias).Error
	return incidencias, err
}

func (r *gormFlotaRepo) FindIncidenciaByID(ctx context.Context, id uint) (*model.FlotaIncidencia, error) {
	var inc model.FlotaIncidencia
	err := r.db.WithContext(ctx).First(&inc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

func (r *gormFlotaRepo) CreateIncidencia(ctx context.Context, inc *model.FlotaIncidencia) error {
	return r.db.WithContext(ctx).Create(inc).Error
}

func (r *gormFlotaRepo) SaveIncidencia(ctx context.Context, inc *model.FlotaIncidencia) error {
	return r.db.WithContext(ctx).Save(inc).Error
}

func (r *gormFlotaRepo) DeleteIncidencia(ctx context.Context, inc *model.FlotaIncidencia) error {
	return r.db.WithContext(ctx).Delete(inc).Error
}
