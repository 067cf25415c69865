package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	ListByEmployeesAndMonth(ctx context.Context, employeeIDs []uint, dayPrefix string) ([]model.Attendance, error)
	FindByEmployeeAndDay(ctx context.Context, employeeID uint, day string) (*model.Attendance, error)
	Create(ctx context.Context, a *model.Attendance) error
	Save(ctx context.Context, a *model.Attendance) error
	Delete(ctx context.Context, a *model.Attendance) error

	ListExtraHoursByEmployeesAndMonth(ctx context.Context, employeeIDs []uint, dayPrefix string) ([]model.ExtraHours, error)
	FindExtraHoursByEmployeeAndDay(ctx context.Context, employeeID uint, day string) (*model.ExtraHours, error)
	CreateExtraHours(ctx context.Context, h *model.ExtraHours) error
	SaveExtraHours(ctx context.Context, h *model.ExtraHours) error
	DeleteExtraHours(ctx context.Context, h *model.ExtraHours) error

	FindComment(ctx context.Context, hubID uint, monthKey string) (*model.AsistenciasComment, error)
	CreateComment(ctx context.Context, c *model.AsistenciasComment) error
	SaveComment(ctx context.Context, c *model.AsistenciasComment) error
}

type gormAttendanceRepo struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &gormAttendanceRepo{db: db}
}

func (r *gormAttendanceRepo) ListByEmployeesAndMonth(ctx context.Context, employeeIDs []uint, dayPrefix string) ([]model.Attendance, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id IN ? AND day LIKE ?", employeeIDs, dayPrefix+"%").
		Find(&rows).Error
	return rows, err
}

func (r *gormAttendanceRepo) FindByEmployeeAndDay(ctx context.Context, employeeID uint, day string) (*model.Attendance, error) {
	var a model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND day = ?", employeeID, day).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *gormAttendanceRepo) Create(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *gormAttendanceRepo) Save(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *gormAttendanceRepo) Delete(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *gormAttendanceRepo) ListExtraHoursByEmployeesAndMonth(ctx context.Context, employeeIDs []uint, dayPrefix string) ([]model.ExtraHours, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var rows []model.ExtraHours
	err := r.db.WithContext(ctx).
		Where("employee_id IN ? AND day LIKE ?", employeeIDs, dayPrefix+"%").
		Find(&rows).Error
	return rows, err
}

func (r *gormAttendanceRepo) FindExtraHoursByEmployeeAndDay(ctx context.Context, employeeID uint, day string) (*model.ExtraHours, error) {
	var h model.ExtraHours
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND day = ?", employeeID, day).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *gormAttendanceRepo) CreateExtraHours(ctx context.Context, h *model.ExtraHours) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *gormAttendanceRepo) SaveExtraHours(ctx context.Context, h *model.ExtraHours) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *gormAttendanceRepo) DeleteExtraHours(ctx context.Context, h *model.ExtraHours) error {
	return r.db.WithContext(ctx).Delete(h).Error
}

func (r *gormAttendanceRepo) FindComment(ctx context.Context, hubID uint, monthKey string) (*model.AsistenciasComment, error) {
	var c model.AsistenciasComment
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND month_key = ?", hubID, monthKey).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormAttendanceRepo) CreateComment(ctx context.Context, c *model.AsistenciasComment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormAttendanceRepo) SaveComment(ctx context.Context, c *model.AsistenciasComment) error {
	return r.db.WithContext(ctx).Save(c).Error
}
