package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
)

type LiquidacionesService struct {
	hubs          *HubService
	liquidaciones repository.LiquidacionRepository
}

func NewLiquidacionesService(hubs *HubService, liquidaciones repository.LiquidacionRepository) *LiquidacionesService {
	return &LiquidacionesService{hubs: hubs, liquidaciones: liquidaciones}
}

// ListRoutes returns the active settlement routes of a hub.
func (s *LiquidacionesService) ListRoutes(ctx context.Context, hubName string) (*dto.RoutesResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	rutas, err := s.liquidaciones.ListRutasByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}

	routes := make([]dto.RouteDTO, 0, len(rutas))
	for _, r := range rutas {
		routes = append(routes, dto.RouteDTO{ID: r.ID, Code: r.Code})
	}
	return &dto.RoutesResponse{Hub: hub.Name, Routes: routes}, nil
}

// CreateRoute registers a route code. An active duplicate is a conflict; a
// soft-deleted one is reactivated under its original id.
func (s *LiquidacionesService) CreateRoute(ctx context.Context, hubName, code string) (*dto.RouteDTO, bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false, apierror.Validation("El codigo de ruta es obligatorio")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.liquidaciones.FindRutaByHubAndCodeFold(ctx, hub.ID, code)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.Active {
			return nil, false, apierror.Conflict("Esa ruta ya existe en este HUB")
		}
		existing.Active = true
		if err := s.liquidaciones.SaveRuta(ctx, existing); err != nil {
			return nil, false, err
		}
		log.Info().Uint("route_id", existing.ID).Str("hub", hub.Name).Msg("route reactivated")
		return &dto.RouteDTO{ID: existing.ID, Code: existing.Code}, true, nil
	}

	ruta := &model.LiquidacionRuta{HubID: hub.ID, Code: code, Active: true}
	if err := s.liquidaciones.CreateRuta(ctx, ruta); err != nil {
		return nil, false, err
	}
	return &dto.RouteDTO{ID: ruta.ID, Code: ruta.Code}, false, nil
}

// resolveRoute locates an active route of the hub by id or code; either
// selector works, id wins when both are present.
func (s *LiquidacionesService) resolveRoute(ctx context.Context, hubID, routeID uint, routeCode string) (*model.LiquidacionRuta, error) {
	routeCode = strings.TrimSpace(routeCode)
	if routeID == 0 && routeCode == "" {
		return nil, apierror.Validation("route_id o route_code es obligatorio")
	}

	var route *model.LiquidacionRuta
	var err error
	if routeID != 0 {
		route, err = s.liquidaciones.FindRutaByID(ctx, routeID)
		if err != nil {
			return nil, err
		}
		if route != nil && (route.HubID != hubID || !route.Active) {
			route = nil
		}
	} else {
		route, err = s.liquidaciones.FindRutaByHubAndCodeFold(ctx, hubID, routeCode)
		if err != nil {
			return nil, err
		}
		if route != nil && !route.Active {
			route = nil
		}
	}
	if route == nil {
		return nil, apierror.NotFound("Ruta no encontrada en este HUB")
	}
	return route, nil
}

// MonthGrid returns the settlement sheet of one route for one month: exactly
// days_in_month rows, stored entries merged in, missing days blank.
func (s *LiquidacionesService) MonthGrid(ctx context.Context, hubName string, year, month int, routeID uint, routeCode string) (*dto.LiquidacionesMonthResponse, error) {
	if err := ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}
	route, err := s.resolveRoute(ctx, hub.ID, routeID, routeCode)
	if err != nil {
		return nil, err
	}

	key := MonthKey(year, month)
	dim := DaysInMonth(year, month)

	entries, err := s.liquidaciones.ListEntriesByRouteAndMonth(ctx, route.ID, key)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int]model.LiquidacionEntry, len(entries))
	for _, e := range entries {
		if d := dayOfMonth(e.Day); d > 0 {
			byDay[d] = e
		}
	}

	rows := make([]dto.LiquidacionRow, 0, dim)
	for d := 1; d <= dim; d++ {
		row := dto.LiquidacionRow{Day: fmt.Sprintf("%s-%02d", key, d)}
		if e, ok := byDay[d]; ok {
			row.Repartidor = e.Repartidor
			row.Metalico = e.Metalico
			row.Ingreso = e.Ingreso
			row.Comment = e.Comment
		}
		rows = append(rows, row)
	}

	return &dto.LiquidacionesMonthResponse{
		Hub:         hub.Name,
		Year:        year,
		Month:       month,
		DaysInMonth: dim,
		Route:       dto.RouteDTO{ID: route.ID, Code: route.Code},
		Rows:        rows,
	}, nil
}

// SaveMonth bulk-saves a settlement sheet. Numeric fields are validated as
// Spanish decimals; a row with every field empty deletes the stored entry.
func (s *LiquidacionesService) SaveMonth(ctx context.Context, hubName string, req *dto.SaveMonthRequest) error {
	if err := ValidateYearMonth(req.Year, req.Month); err != nil {
		return err
	}
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}
	route, err := s.resolveRoute(ctx, hub.ID, req.RouteID, req.RouteCode)
	if err != nil {
		return err
	}

	key := MonthKey(req.Year, req.Month)
	existing, err := s.liquidaciones.ListEntriesByRouteAndMonth(ctx, route.ID, key)
	if err != nil {
		return err
	}
	byDay := make(map[string]*model.LiquidacionEntry, len(existing))
	for i := range existing {
		byDay[existing[i].Day] = &existing[i]
	}

	for _, r := range req.Rows {
		day := strings.TrimSpace(r.Day)
		repartidor := strings.TrimSpace(r.Repartidor)
		metalico := strings.TrimSpace(r.Metalico)
		ingreso := strings.TrimSpace(r.Ingreso)
		comment := strings.TrimSpace(r.Comment)

		if _, _, _, ok := ParseYMD(day); !ok {
			return apierror.Validation(fmt.Sprintf("Fecha invalida: %s", day))
		}
		if metalico != "" && !validNumberES(metalico) {
			return apierror.Validation(fmt.Sprintf("Importe invalido: %s", metalico))
		}
		if ingreso != "" && !validNumberES(ingreso) {
			return apierror.Validation(fmt.Sprintf("Importe invalido: %s", ingreso))
		}

		if repartidor == "" && metalico == "" && ingreso == "" && comment == "" {
			if e, ok := byDay[day]; ok {
				if err := s.liquidaciones.DeleteEntry(ctx, e); err != nil {
					return err
				}
			}
			continue
		}

		if e, ok := byDay[day]; ok {
			e.Repartidor = repartidor
			e.Metalico = metalico
			e.Ingreso = ingreso
			e.Comment = comment
			if err := s.liquidaciones.SaveEntry(ctx, e); err != nil {
				return err
			}
			continue
		}

		entry := &model.LiquidacionEntry{
			RouteID:    route.ID,
			Day:        day,
			Repartidor: repartidor,
			Metalico:   metalico,
			Ingreso:    ingreso,
			Comment:    comment,
		}
		if err := s.liquidaciones.CreateEntry(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// SetComment stores a single day comment, creating the entry when the day has
// no other data yet.
func (s *LiquidacionesService) SetComment(ctx context.Context, hubName string, req *dto.SetCommentRequest) error {
	day := strings.TrimSpace(req.Day)
	if day == "" {
		return apierror.Validation("day es obligatorio (YYYY-MM-DD)")
	}
	if _, _, _, ok := ParseYMD(day); !ok {
		return apierror.Validation("Fecha invalida, usa YYYY-MM-DD")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}
	route, err := s.resolveRoute(ctx, hub.ID, req.RouteID, req.RouteCode)
	if err != nil {
		return err
	}

	comment := strings.TrimSpace(req.Comment)
	entry, err := s.liquidaciones.FindEntryByRouteAndDay(ctx, route.ID, day)
	if err != nil {
		return err
	}
	if entry == nil {
		return s.liquidaciones.CreateEntry(ctx, &model.LiquidacionEntry{
			RouteID: route.ID,
			Day:     day,
			Comment: comment,
		})
	}
	entry.Comment = comment
	return s.liquidaciones.SaveEntry(ctx, entry)
}

// validNumberES accepts a Spanish formatted number: "1.268,05", "35", "7,5".
func validNumberES(s string) bool {
	normalized := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	_, err := strconv.ParseFloat(normalized, 64)
	return err == nil
}
