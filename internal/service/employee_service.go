package service

import (
	"context"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
)

type EmployeeService struct {
	hubs      *HubService
	employees repository.EmployeeRepository
}

func NewEmployeeService(hubs *HubService, employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{hubs: hubs, employees: employees}
}

// Create adds an employee to the hub. An active row with the same name is a
// conflict; an inactive one is reactivated under its original id so the
// attendance history stays attached.
func (s *EmployeeService) Create(ctx context.Context, hubName, name string) (*model.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apierror.Validation("Nombre requerido")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	existing, err := s.employees.FindByHubAndNameFold(ctx, hub.ID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Active {
			return nil, apierror.Conflict("Ese empleado ya existe en este HUB")
		}
		existing.Active = true
		if err := s.employees.Save(ctx, existing); err != nil {
			return nil, err
		}
		log.Info().Uint("employee_id", existing.ID).Str("hub", hub.Name).Msg("employee reactivated")
		return existing, nil
	}

	emp := &model.Employee{HubID: hub.ID, Name: name, Active: true}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Delete soft-deletes an active employee of the hub.
func (s *EmployeeService) Delete(ctx context.Context, hubName string, employeeID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp == nil || emp.HubID != hub.ID || !emp.Active {
		return apierror.NotFound("Empleado no encontrado")
	}

	emp.Active = false
	return s.employees.Save(ctx, emp)
}

// activeInHub resolves an employee that must exist, be active, and belong to
// the hub. Any miss is the same NotFound so cross-hub probing leaks nothing.
func (s *EmployeeService) activeInHub(ctx context.Context, hubID, employeeID uint) (*model.Employee, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.HubID != hubID || !emp.Active {
		return nil, apierror.NotFound("Empleado no existe en este HUB")
	}
	return emp, nil
}
