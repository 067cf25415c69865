package service

import (
	"context"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/shopspring/decimal"
)

type ComprasService struct {
	hubs    *HubService
	compras repository.CompraRepository
}

func NewComprasService(hubs *HubService, compras repository.CompraRepository) *ComprasService {
	return &ComprasService{hubs: hubs, compras: compras}
}

// List returns a hub's active purchase line items.
func (s *ComprasService) List(ctx context.Context, hubName string) (*dto.ComprasListResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	compras, err := s.compras.ListActiveByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CompraDTO, 0, len(compras))
	for _, c := range compras {
		items = append(items, compraDTO(&c))
	}
	return &dto.ComprasListResponse{Hub: hub.Name, Items: items}, nil
}

// Add creates a purchase line item. Especificaciones falls back to the legacy
// descripcion key when only that one arrives.
func (s *ComprasService) Add(ctx context.Context, hubName string, req *dto.AddCompraRequest) (*dto.CompraDTO, error) {
	item := strings.TrimSpace(req.Item)
	if item == "" {
		return nil, apierror.Validation("item es obligatorio")
	}

	espec := strings.TrimSpace(req.Especificaciones)
	if espec == "" {
		espec = strings.TrimSpace(req.Descripcion)
	}

	precio := decimal.Zero
	if req.Precio != nil {
		precio = req.Precio.Decimal
	}
	if precio.IsNegative() {
		return nil, apierror.Validation("precio invalido")
	}

	cantidad := 1
	if req.Cantidad != nil {
		cantidad = int(*req.Cantidad)
	}
	if cantidad <= 0 {
		return nil, apierror.Validation("cantidad invalida")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	compra := &model.HubCompra{
		HubID:            hub.ID,
		Item:             item,
		Especificaciones: espec,
		Donde:            strings.TrimSpace(req.Donde),
		Precio:           precio,
		Cantidad:         cantidad,
		Comprado:         false,
		Active:           true,
	}
	if err := s.compras.Create(ctx, compra); err != nil {
		return nil, err
	}
	out := compraDTO(compra)
	return &out, nil
}

// Update patches a line item; only fields present in the request change.
func (s *ComprasService) Update(ctx context.Context, hubName string, itemID uint, req *dto.UpdateCompraRequest) (*dto.CompraDTO, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	compra, err := s.findActive(ctx, hub.ID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Item != nil {
		v := strings.TrimSpace(*req.Item)
		if v == "" {
			return nil, apierror.Validation("item es obligatorio")
		}
		compra.Item = v
	}
	if req.Especificaciones != nil || req.Descripcion != nil {
		espec := ""
		if req.Especificaciones != nil {
			espec = strings.TrimSpace(*req.Especificaciones)
		}
		if espec == "" && req.Descripcion != nil {
			espec = strings.TrimSpace(*req.Descripcion)
		}
		compra.Especificaciones = espec
	}
	if req.Donde != nil {
		compra.Donde = strings.TrimSpace(*req.Donde)
	}
	if req.Precio != nil {
		if req.Precio.Decimal.IsNegative() {
			return nil, apierror.Validation("precio invalido")
		}
		compra.Precio = req.Precio.Decimal
	}
	if req.Cantidad != nil {
		if int(*req.Cantidad) <= 0 {
			return nil, apierror.Validation("cantidad invalida")
		}
		compra.Cantidad = int(*req.Cantidad)
	}
	if req.Comprado != nil {
		compra.Comprado = *req.Comprado
	}

	if err := s.compras.Save(ctx, compra); err != nil {
		return nil, err
	}
	out := compraDTO(compra)
	return &out, nil
}

// Delete removes a line item for real; the purchase list has no history
// value.
func (s *ComprasService) Delete(ctx context.Context, hubName string, itemID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	compra, err := s.findActive(ctx, hub.ID, itemID)
	if err != nil {
		return err
	}
	return s.compras.Delete(ctx, compra)
}

func (s *ComprasService) findActive(ctx context.Context, hubID, itemID uint) (*model.HubCompra, error) {
	compra, err := s.compras.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if compra == nil || compra.HubID != hubID || !compra.Active {
		return nil, apierror.NotFound("Registro no encontrado")
	}
	return compra, nil
}

func compraDTO(c *model.HubCompra) dto.CompraDTO {
	precio, _ := c.Precio.Float64()
	total, _ := c.Precio.Mul(decimal.NewFromInt(int64(c.Cantidad))).Float64()
	espec := strings.TrimSpace(c.Especificaciones)
	return dto.CompraDTO{
		ID:               c.ID,
		Item:             c.Item,
		Especificaciones: espec,
		Descripcion:      espec,
		Donde:            c.Donde,
		Precio:           precio,
		Cantidad:         c.Cantidad,
		Total:            total,
		Comprado:         c.Comprado,
		Active:           c.Active,
		CreatedAt:        c.CreatedAt.Format("2006-01-02T15:04:05"),
		UpdatedAt:        c.UpdatedAt.Format("2006-01-02T15:04:05"),
	}
}
