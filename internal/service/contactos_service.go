package service

import (
	"context"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
)

// NormalizePhone keeps + and digits: spaces and dashes are stripped.
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) > 40 {
		s = s[:40]
	}
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

type ContactosService struct {
	hubs      *HubService
	contactos repository.ContactoRepository
}

func NewContactosService(hubs *HubService, contactos repository.ContactoRepository) *ContactosService {
	return &ContactosService{hubs: hubs, contactos: contactos}
}

// List returns a hub's active contacts.
func (s *ContactosService) List(ctx context.Context, hubName string) (*dto.ContactosListResponse, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	contactos, err := s.contactos.ListActiveByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContactoDTO, 0, len(contactos))
	for _, c := range contactos {
		items = append(items, contactoDTO(&c))
	}
	return &dto.ContactosListResponse{Hub: hub.Name, Items: items}, nil
}

// Add creates a contact. An active row with the same phone is a conflict; a
// soft-deleted one is reactivated under its original id with the new data.
// The bool result reports reactivation so the handler can answer 200 vs 201.
func (s *ContactosService) Add(ctx context.Context, hubName string, req *dto.AddContactoRequest) (*dto.ContactoDTO, bool, error) {
	nombre := strings.TrimSpace(req.Nombre)
	telefono := NormalizePhone(req.Telefono)

	if nombre == "" {
		return nil, false, apierror.Validation("nombre es obligatorio")
	}
	if telefono == "" {
		return nil, false, apierror.Validation("telefono es obligatorio")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.contactos.FindByHubAndTelefono(ctx, hub.ID, telefono)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.Active {
			return nil, false, apierror.Conflict("Ya existe un contacto con ese telefono en esta plaza")
		}
		existing.Active = true
		existing.Nombre = nombre
		existing.Cargo = strings.TrimSpace(req.Cargo)
		if err := s.contactos.Save(ctx, existing); err != nil {
			return nil, false, err
		}
		log.Info().Uint("contacto_id", existing.ID).Str("hub", hub.Name).Msg("contact reactivated")
		out := contactoDTO(existing)
		return &out, true, nil
	}

	contacto := &model.Contacto{
		HubID:    hub.ID,
		Nombre:   nombre,
		Cargo:    strings.TrimSpace(req.Cargo),
		Telefono: telefono,
		Active:   true,
	}
	if err := s.contactos.Create(ctx, contacto); err != nil {
		return nil, false, err
	}
	out := contactoDTO(contacto)
	return &out, false, nil
}

// Update patches a contact. A phone change re-checks active uniqueness within
// the hub before committing.
func (s *ContactosService) Update(ctx context.Context, hubName string, contactoID uint, req *dto.UpdateContactoRequest) (*dto.ContactoDTO, error) {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	contacto, err := s.findActive(ctx, hub.ID, contactoID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, apierror.Validation("nombre es obligatorio")
		}
		contacto.Nombre = nombre
	}
	if req.Cargo != nil {
		contacto.Cargo = strings.TrimSpace(*req.Cargo)
	}
	if req.Telefono != nil {
		tel := NormalizePhone(*req.Telefono)
		if tel == "" {
			return nil, apierror.Validation("telefono es obligatorio")
		}
		dup, err := s.contactos.FindActiveByHubAndTelefono(ctx, hub.ID, tel)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != contacto.ID {
			return nil, apierror.Conflict("Ya existe un contacto con ese telefono en esta plaza")
		}
		contacto.Telefono = tel
	}

	if err := s.contactos.Save(ctx, contacto); err != nil {
		return nil, err
	}
	out := contactoDTO(contacto)
	return &out, nil
}

// Delete soft-deletes an active contact of the hub.
func (s *ContactosService) Delete(ctx context.Context, hubName string, contactoID uint) error {
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}

	contacto, err := s.findActive(ctx, hub.ID, contactoID)
	if err != nil {
		return err
	}
	contacto.Active = false
	return s.contactos.Save(ctx, contacto)
}

func (s *ContactosService) findActive(ctx context.Context, hubID, contactoID uint) (*model.Contacto, error) {
	contacto, err := s.contactos.FindByID(ctx, contactoID)
	if err != nil {
		return nil, err
	}
	if contacto == nil || contacto.HubID != hubID || !contacto.Active {
		return nil, apierror.NotFound("Contacto no encontrado")
	}
	return contacto, nil
}

func contactoDTO(c *model.Contacto) dto.ContactoDTO {
	return dto.ContactoDTO{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Cargo:     c.Cargo,
		Telefono:  c.Telefono,
		Active:    c.Active,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05"),
		UpdatedAt: c.UpdatedAt.Format("2006-01-02T15:04:05"),
	}
}
