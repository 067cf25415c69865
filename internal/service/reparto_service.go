package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/infra"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
)

type RepartoService struct {
	hubs          *HubService
	reparto       repository.RepartoRepository
	liquidaciones repository.LiquidacionRepository
	geocoder      infra.Geocoder
}

func NewRepartoService(hubs *HubService, reparto repository.RepartoRepository, liquidaciones repository.LiquidacionRepository, geocoder infra.Geocoder) *RepartoService {
	return &RepartoService{hubs: hubs, reparto: reparto, liquidaciones: liquidaciones, geocoder: geocoder}
}

// ListClientes returns the active delivery clients of one route. A missing
// route_id yields an empty list, not an error.
func (s *RepartoService) ListClientes(ctx context.Context, hubName string, routeID uint) (*dto.RepartoClientesResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}
	if routeID == 0 {
		return &dto.RepartoClientesResponse{Items: []dto.RepartoClienteDTO{}}, nil
	}

	clientes, err := s.reparto.ListActiveByHubAndRoute(ctx, hub.ID, routeID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RepartoClienteDTO, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, repartoClienteDTO(&c))
	}
	return &dto.RepartoClientesResponse{Items: items}, nil
}

// activeRouteInHub validates a route_id against the hub's active routes.
// A miss is a Validation error, not NotFound: the client sent an id that was
// never valid for this hub.
func (s *RepartoService) activeRouteInHub(ctx context.Context, hubID, routeID uint) error {
	route, err := s.liquidaciones.FindRutaByID(ctx, routeID)
	if err != nil {
		return err
	}
	if route == nil || route.HubID != hubID || !route.Active {
		return apierror.Validation("route_id no existe en Liquidaciones para este HUB")
	}
	return nil
}

// AddCliente creates a delivery client. Coordinates come from the request or
// from geocoding the address; creation is declined when neither yields a
// usable position. A supplied cliente_codigo that matches a soft-deleted row
// reactivates it under the original id.
func (s *RepartoService) AddCliente(ctx context.Context, hubName string, req *dto.AddRepartoClienteRequest) (*dto.RepartoClienteDTO, bool, error) {
	routeID := uint(int(req.RouteID))
	if routeID == 0 {
		return nil, false, apierror.Validation("route_id obligatorio")
	}

	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, false, apierror.Validation("Nombre obligatorio")
	}
	direccion := strings.TrimSpace(req.Direccion)
	if direccion == "" {
		return nil, false, apierror.Validation("Direccion obligatoria")
	}

	estado := strings.ToLower(strings.TrimSpace(req.Estado))
	if estado == "" {
		estado = model.EstadoPendiente
	}
	if !model.EstadoValido(estado) {
		return nil, false, apierror.Validation("Estado invalido")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, false, err
	}
	if err := s.activeRouteInHub(ctx, hub.ID, routeID); err != nil {
		return nil, false, err
	}

	var lat, lng float64
	if req.Lat != nil && req.Lng != nil {
		lat = float64(*req.Lat)
		lng = float64(*req.Lng)
	}
	if lat == 0 && lng == 0 {
		lat, lng, err = s.geocoder.Resolve(ctx, direccion)
		if err != nil {
			log.Warn().Str("direccion", direccion).Str("hub", hub.Name).Msg("geocode miss, client creation declined")
			return nil, false, apierror.Validation("No pude ubicar la direccion. Prueba con una direccion mas exacta o anade lat/lng.")
		}
	}

	codigo := strings.TrimSpace(req.ClienteCodigo)
	if codigo != "" {
		existing, err := s.reparto.FindByHubRouteAndCodigo(ctx, hub.ID, routeID, codigo)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			if existing.Activo {
				return nil, false, apierror.Conflict("Ya existe un cliente con ese codigo en esta ruta")
			}
			existing.Activo = true
			existing.Nombre = nombre
			existing.Direccion = direccion
			existing.Lat = lat
			existing.Lng = lng
			existing.Estado = estado
			if err := s.reparto.Save(ctx, existing); err != nil {
				return nil, false, err
			}
			log.Info().Uint("cliente_id", existing.ID).Str("hub", hub.Name).Msg("delivery client reactivated")
			out := repartoClienteDTO(existing)
			return &out, true, nil
		}
	}

	cliente := &model.RepartoCliente{
		HubID:         hub.ID,
		RouteID:       routeID,
		ClienteCodigo: codigo,
		Nombre:        nombre,
		Direccion:     direccion,
		Lat:           lat,
		Lng:           lng,
		Estado:        estado,
		Activo:        true,
	}
	if err := s.reparto.Create(ctx, cliente); err != nil {
		return nil, false, err
	}
	if err := s.ensureClienteCodigo(ctx, cliente); err != nil {
		return nil, false, err
	}

	out := repartoClienteDTO(cliente)
	return &out, false, nil
}

// UpdateCliente patches a delivery client; only present fields change. The
// status enum and any new route_id are validated before committing.
func (s *RepartoService) UpdateCliente(ctx context.Context, hubName string, clienteID uint, req *dto.UpdateRepartoClienteRequest) (*dto.RepartoClienteDTO, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	cliente, err := s.reparto.FindByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cliente.HubID != hub.ID {
		return nil, apierror.NotFound("Cliente no encontrado")
	}

	if req.Estado != nil {
		estado := strings.ToLower(strings.TrimSpace(*req.Estado))
		if !model.EstadoValido(estado) {
			return nil, apierror.Validation("Estado invalido")
		}
		cliente.Estado = estado
	}
	if req.Nombre != nil {
		n := strings.TrimSpace(*req.Nombre)
		if n == "" {
			return nil, apierror.Validation("Nombre no puede estar vacio")
		}
		cliente.Nombre = n
	}
	if req.Direccion != nil {
		cliente.Direccion = strings.TrimSpace(*req.Direccion)
	}
	if req.Lat != nil {
		cliente.Lat = float64(*req.Lat)
	}
	if req.Lng != nil {
		cliente.Lng = float64(*req.Lng)
	}
	if req.ClienteCodigo != nil {
		cliente.ClienteCodigo = strings.TrimSpace(*req.ClienteCodigo)
	}
	if req.RouteID != nil {
		rid := uint(int(*req.RouteID))
		if rid == 0 {
			return nil, apierror.Validation("route_id invalido")
		}
		if err := s.activeRouteInHub(ctx, hub.ID, rid); err != nil {
			return nil, err
		}
		cliente.RouteID = rid
	}
	if req.Activo != nil {
		cliente.Activo = *req.Activo
	}

	if err := s.reparto.Save(ctx, cliente); err != nil {
		return nil, err
	}
	if err := s.ensureClienteCodigo(ctx, cliente); err != nil {
		return nil, err
	}

	out := repartoClienteDTO(cliente)
	return &out, nil
}

// DeleteCliente soft-deletes a delivery client of the hub.
func (s *RepartoService) DeleteCliente(ctx context.Context, hubName string, clienteID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	cliente, err := s.reparto.FindByID(ctx, clienteID)
	if err != nil {
		return err
	}
	if cliente == nil || cliente.HubID != hub.ID {
		return apierror.NotFound("Cliente no encontrado")
	}

	cliente.Activo = false
	return s.reparto.Save(ctx, cliente)
}

// ensureClienteCodigo backfills MANUAL-<id> once the row's id is known.
func (s *RepartoService) ensureClienteCodigo(ctx context.Context, cliente *model.RepartoCliente) error {
	if strings.TrimSpace(cliente.ClienteCodigo) != "" {
		return nil
	}
	cliente.ClienteCodigo = fmt.Sprintf("MANUAL-%d", cliente.ID)
	return s.reparto.Save(ctx, cliente)
}

func repartoClienteDTO(c *model.RepartoCliente) dto.RepartoClienteDTO {
	return dto.RepartoClienteDTO{
		ID:            c.ID,
		HubID:         c.HubID,
		RouteID:       c.RouteID,
		ClienteCodigo: c.ClienteCodigo,
		Nombre:        c.Nombre,
		Direccion:     c.Direccion,
		Lat:           c.Lat,
		Lng:           c.Lng,
		Estado:        c.Estado,
		Activo:        c.Activo,
		CreatedAt:     c.CreatedAt.Format("2006-01-02T15:04:05"),
		UpdatedAt:     c.UpdatedAt.Format("2006-01-02T15:04:05"),
	}
}
