package service

import (
	"context"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"
)

type KilosLitrosService struct {
	hubs *HubService
	repo repository.KilosLitrosRepository
}

func NewKilosLitrosService(hubs *HubService, repo repository.KilosLitrosRepository) *KilosLitrosService {
	return &KilosLitrosService{hubs: hubs, repo: repo}
}

// List returns a hub's daily metrics, optionally narrowed to a year and
// month, with aggregate totals.
func (s *KilosLitrosService) List(ctx context.Context, hubName string, year, month *int) (*dto.KilosLitrosListResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	var rows []model.KilosLitros
	if year != nil && month != nil {
		rows, err = s.repo.ListActiveByHubAndMonth(ctx, hub.ID, *year, *month)
	} else {
		rows, err = s.repo.ListActiveByHub(ctx, hub.ID)
		if err == nil && (year != nil || month != nil) {
			filtered := rows[:0]
			for _, r := range rows {
				if year != nil && r.Year != *year {
					continue
				}
				if month != nil && r.Month != *month {
					continue
				}
				filtered = append(filtered, r)
			}
			rows = filtered
		}
	}
	if err != nil {
		return nil, err
	}

	var totals dto.KilosLitrosTotals
	items := make([]dto.KilosLitrosDTO, 0, len(rows))
	for _, r := range rows {
		totals.Clientes += r.Clientes
		totals.Kilos += r.Kilos
		totals.Litros += r.Litros
		items = append(items, kilosLitrosDTO(&r))
	}

	return &dto.KilosLitrosListResponse{
		Hub:    hub.Name,
		Year:   year,
		Month:  month,
		Totals: totals,
		Items:  items,
	}, nil
}

// Add records the metrics of one route on one day. Year and month are
// denormalized from the day; one active row per (hub, day, route).
func (s *KilosLitrosService) Add(ctx context.Context, hubName string, req *dto.AddKilosLitrosRequest) (*dto.KilosLitrosDTO, error) {
	day := strings.TrimSpace(req.Day)
	nombre := strings.TrimSpace(req.Nombre)
	ruta := int(req.RutaNumero)

	if day == "" {
		return nil, apierror.Validation("day es obligatorio (YYYY-MM-DD)")
	}
	year, month, _, ok := ParseYMD(day)
	if !ok {
		return nil, apierror.Validation("Formato de day invalido. Use YYYY-MM-DD")
	}
	if ruta <= 0 {
		return nil, apierror.Validation("Numero de ruta invalido")
	}
	if nombre == "" {
		return nil, apierror.Validation("nombre es obligatorio")
	}
	if int(req.Clientes) < 0 || float64(req.Kilos) < 0 || float64(req.Litros) < 0 {
		return nil, apierror.Validation("Valores negativos no permitidos")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindActiveByHubDayRuta(ctx, hub.ID, day, ruta)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflict("Ya existe un registro para esa ruta en ese dia")
	}

	item := &model.KilosLitros{
		HubID:      hub.ID,
		Day:        day,
		Year:       year,
		Month:      month,
		RutaNumero: ruta,
		Nombre:     nombre,
		Clientes:   int(req.Clientes),
		Kilos:      float64(req.Kilos),
		Litros:     float64(req.Litros),
		Active:     true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := kilosLitrosDTO(item)
	return &out, nil
}

// Update replaces the mutable fields of a record, re-checking the active
// (hub, day, route) uniqueness when the route number changes.
func (s *KilosLitrosService) Update(ctx context.Context, hubName string, itemID uint, req *dto.UpdateKilosLitrosRequest) (*dto.KilosLitrosDTO, error) {
	ruta := int(req.RutaNumero)
	if ruta <= 0 {
		return nil, apierror.Validation("ruta_numero invalido")
	}
	nombre := strings.ToLower(strings.TrimSpace(req.Nombre))
	if nombre == "" {
		return nil, apierror.Validation("nombre es obligatorio")
	}
	if int(req.Clientes) < 0 {
		return nil, apierror.Validation("clientes invalido")
	}
	kilos := float64(req.Kilos)
	litros := float64(req.Litros)
	if kilos < 0 || litros < 0 {
		return nil, apierror.Validation("kilos/litros invalido")
	}
	if kilos == 0 && litros == 0 {
		return nil, apierror.Validation("Debe indicar kilos o litros")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apierror.NotFound("Registro no encontrado")
	}
	if item.HubID != hub.ID {
		return nil, apierror.NotFound("Registro no pertenece a ese HUB")
	}
	if !item.Active {
		return nil, apierror.Conflict("Registro eliminado (no se puede editar)")
	}

	dup, err := s.repo.FindActiveByHubDayRuta(ctx, hub.ID, item.Day, ruta)
	if err != nil {
		return nil, err
	}
	if dup != nil && dup.ID != item.ID {
		return nil, apierror.Conflict("Ya existe un registro ACTIVO para ese dia y esa ruta")
	}

	item.RutaNumero = ruta
	item.Nombre = nombre
	item.Clientes = int(req.Clientes)
	item.Kilos = kilos
	item.Litros = litros

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	out := kilosLitrosDTO(item)
	return &out, nil
}

// Delete removes a record for real so the unique index never collides with a
// tombstone.
func (s *KilosLitrosService) Delete(ctx context.Context, hubName string, itemID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apierror.NotFound("Registro no encontrado")
	}
	if item.HubID != hub.ID {
		return apierror.NotFound("Registro no pertenece a ese HUB")
	}
	if !item.Active {
		return apierror.Conflict("Registro ya estaba eliminado")
	}
	return s.repo.Delete(ctx, item)
}

func kilosLitrosDTO(item *model.KilosLitros) dto.KilosLitrosDTO {
	return dto.KilosLitrosDTO{
		ID:         item.ID,
		Day:        item.Day,
		Year:       item.Year,
		Month:      item.Month,
		RutaNumero: item.RutaNumero,
		Nombre:     item.Nombre,
		Clientes:   item.Clientes,
		Kilos:      item.Kilos,
		Litros:     item.Litros,
	}
}
