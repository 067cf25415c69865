package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Canonical vehicle types, keyed by lowercase input.
var canonTipos = map[string]string{
	"moto":      "Moto",
	"camion":    "Camion",
	"trailer":   "Trailer",
	"carrozado": "Carrozado",
	"mus":       "Mus",
	"furgoneta": "Furgoneta",
}

// NormalizePlate uppercases a plate and strips every space.
func NormalizePlate(raw string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), " ", "")
}

// CanonTipo maps loose vehicle-type input to its canonical form, "" if
// unrecognized.
func CanonTipo(tipo string) string {
	return canonTipos[strings.ToLower(strings.TrimSpace(tipo))]
}

type FlotaService struct {
	hubs  *HubService
	flota repository.FlotaRepository
}

func NewFlotaService(hubs *HubService, flota repository.FlotaRepository) *FlotaService {
	return &FlotaService{hubs: hubs, flota: flota}
}

// ListVehiculos returns the active fleet of a hub.
func (s *FlotaService) ListVehiculos(ctx context.Context, hubName string) (*dto.FlotaListResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	vehiculos, err := s.flota.ListActiveVehiculosByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}

	vehicles := make([]dto.VehiculoDTO, 0, len(vehiculos))
	for _, v := range vehiculos {
		vehicles = append(vehicles, dto.VehiculoDTO{ID: v.ID, Matricula: v.Matricula, Tipo: v.Tipo})
	}
	return &dto.FlotaListResponse{Hub: hub.Name, Vehicles: vehicles}, nil
}

// AddVehiculo registers a vehicle. An active duplicate plate is a conflict; a
// soft-deleted one is reactivated under its original id with the new type.
// The bool result reports reactivation so the handler can answer 200 vs 201.
func (s *FlotaService) AddVehiculo(ctx context.Context, hubName, matricula, tipo string) (*dto.VehiculoDTO, bool, error) {
	matricula = NormalizePlate(matricula)
	if matricula == "" {
		return nil, false, apierror.Validation("La matricula es obligatoria")
	}
	canon := CanonTipo(tipo)
	if canon == "" {
		return nil, false, apierror.Validation("Tipo de vehiculo invalido")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.flota.FindVehiculoByHubAndMatricula(ctx, hub.ID, matricula)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.Active {
			return nil, false, apierror.Conflict("Ese vehiculo ya existe en este HUB")
		}
		existing.Active = true
		existing.Tipo = canon
		if err := s.flota.SaveVehiculo(ctx, existing); err != nil {
			return nil, false, err
		}
		log.Info().Uint("vehiculo_id", existing.ID).Str("hub", hub.Name).Msg("vehicle reactivated")
		return &dto.VehiculoDTO{ID: existing.ID, Matricula: existing.Matricula, Tipo: existing.Tipo}, true, nil
	}

	v := &model.FlotaVehiculo{HubID: hub.ID, Matricula: matricula, Tipo: canon, Active: true}
	if err := s.flota.CreateVehiculo(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, apierror.Conflict("Ese vehiculo ya existe en este HUB")
		}
		return nil, false, err
	}
	return &dto.VehiculoDTO{ID: v.ID, Matricula: v.Matricula, Tipo: v.Tipo}, false, nil
}

// DeleteVehiculo soft-deletes an active vehicle of the hub.
func (s *FlotaService) DeleteVehiculo(ctx context.Context, hubName string, vehiculoID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	v, err := s.flota.FindVehiculoByID(ctx, vehiculoID)
	if err != nil {
		return err
	}
	if v == nil || v.HubID != hub.ID || !v.Active {
		return apierror.NotFound("Vehiculo no encontrado")
	}

	v.Active = false
	return s.flota.SaveVehiculo(ctx, v)
}

func (s *FlotaService) activeVehiculo(ctx context.Context, hubID, vehiculoID uint) (*model.FlotaVehiculo, error) {
	v, err := s.flota.FindVehiculoByID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	if v == nil || v.HubID != hubID || !v.Active {
		return nil, apierror.NotFound("Vehiculo no encontrado")
	}
	return v, nil
}

// ListIncidencias returns a vehicle's incident history, newest first.
func (s *FlotaService) ListIncidencias(ctx context.Context, hubName string, vehiculoID uint) (*dto.IncidenciasResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}
	v, err := s.activeVehiculo(ctx, hub.ID, vehiculoID)
	if err != nil {
		return nil, err
	}

	incidencias, err := s.flota.ListIncidenciasByVehiculo(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.IncidenciaDTO, 0, len(incidencias))
	for _, inc := range incidencias {
		items = append(items, incidenciaDTO(&inc))
	}
	return &dto.IncidenciasResponse{
		Vehiculo: dto.VehiculoDTO{ID: v.ID, Matricula: v.Matricula, Tipo: v.Tipo},
		Items:    items,
	}, nil
}

// AddIncidencia logs an incident against an active vehicle.
func (s *FlotaService) AddIncidencia(ctx context.Context, hubName string, vehiculoID uint, req *dto.AddIncidenciaRequest) (*dto.IncidenciaDTO, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}
	if _, err := s.activeVehiculo(ctx, hub.ID, vehiculoID); err != nil {
		return nil, err
	}

	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return nil, apierror.Validation("Titulo obligatorio")
	}
	fecha, ok := ParseFechaES(strings.TrimSpace(req.Fecha))
	if !ok {
		return nil, apierror.Validation("fecha invalida (usa DD/MM/AAAA)")
	}
	coste := req.Coste.Decimal
	if coste.IsNegative() {
		return nil, apierror.Validation("coste invalido")
	}
	if int(req.Km) < 0 {
		return nil, apierror.Validation("km invalido")
	}

	inc := &model.FlotaIncidencia{
		HubID:       hub.ID,
		VehiculoID:  vehiculoID,
		Titulo:      titulo,
		Descripcion: strings.TrimSpace(req.Descripcion),
		Coste:       coste,
		Km:          int(req.Km),
		Fecha:       fecha,
	}
	if err := s.flota.CreateIncidencia(ctx, inc); err != nil {
		return nil, err
	}
	out := incidenciaDTO(inc)
	return &out, nil
}

// UpdateIncidencia patches an incident; only fields present in the request
// change.
func (s *FlotaService) UpdateIncidencia(ctx context.Context, hubName string, vehiculoID, incID uint, req *dto.UpdateIncidenciaRequest) (*dto.IncidenciaDTO, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	inc, err := s.flota.FindIncidenciaByID(ctx, incID)
	if err != nil {
		return nil, err
	}
	if inc == nil || inc.HubID != hub.ID || inc.VehiculoID != vehiculoID {
		return nil, apierror.NotFound("Incidencia no encontrada")
	}

	if req.Titulo != nil {
		t := strings.TrimSpace(*req.Titulo)
		if t == "" {
			return nil, apierror.Validation("Titulo obligatorio")
		}
		inc.Titulo = t
	}
	if req.Descripcion != nil {
		inc.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.Coste != nil {
		if req.Coste.Decimal.IsNegative() {
			return nil, apierror.Validation("coste invalido")
		}
		inc.Coste = req.Coste.Decimal
	}
	if req.Km != nil {
		if int(*req.Km) < 0 {
			return nil, apierror.Validation("km invalido")
		}
		inc.Km = int(*req.Km)
	}
	if req.Fecha != nil {
		f, ok := ParseFechaES(strings.TrimSpace(*req.Fecha))
		if !ok {
			return nil, apierror.Validation("fecha invalida (usa DD/MM/AAAA)")
		}
		inc.Fecha = f
	}

	if err := s.flota.SaveIncidencia(ctx, inc); err != nil {
		return nil, err
	}
	out := incidenciaDTO(inc)
	return &out, nil
}

// DeleteIncidencia removes an incident for real; corrected incidents carry no
// history value.
func (s *FlotaService) DeleteIncidencia(ctx context.Context, hubName string, vehiculoID, incID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	inc, err := s.flota.FindIncidenciaByID(ctx, incID)
	if err != nil {
		return err
	}
	if inc == nil || inc.HubID != hub.ID || inc.VehiculoID != vehiculoID {
		return apierror.NotFound("Incidencia no encontrada")
	}
	return s.flota.DeleteIncidencia(ctx, inc)
}

func incidenciaDTO(inc *model.FlotaIncidencia) dto.IncidenciaDTO {
	coste, _ := inc.Coste.Float64()
	return dto.IncidenciaDTO{
		ID:          inc.ID,
		VehiculoID:  inc.VehiculoID,
		Titulo:      inc.Titulo,
		Descripcion: inc.Descripcion,
		Coste:       coste,
		Km:          inc.Km,
		Fecha:       FormatFechaES(inc.Fecha),
		CreatedAt:   inc.CreatedAt.Format("2006-01-02T15:04:05"),
		UpdatedAt:   inc.UpdatedAt.Format("2006-01-02T15:04:05"),
	}
}
