package service

import (
	"context"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// routesByHub is the initial settlement-route layout of the operation.
// Seeding is idempotent: existing hubs and routes are left untouched.
var routesByHub = map[string][]string{
	"Dibecesa":             {"011", "002", "004", "007"},
	"Cordoba":              {"07", "70", "31"},
	"Madrid Puerta Toledo": {"005", "006", "007", "17", "31"},
	"Cartagena":            {"155"},
	"Vitoria":              {"08", "09", "10"},
	"Cadiz":                {"104", "141", "147", "156", "157", "164", "165"},
	"Caceres":              {"103", "143", "310", "320", "340", "350"},
}

const (
	demoAdminEmail    = "admin@demo.com"
	demoAdminPassword = "123456"
)

type SeedService struct {
	hubs          *HubService
	liquidaciones repository.LiquidacionRepository
	users         repository.UserRepository
}

func NewSeedService(hubs *HubService, liquidaciones repository.LiquidacionRepository, users repository.UserRepository) *SeedService {
	return &SeedService{hubs: hubs, liquidaciones: liquidaciones, users: users}
}

// SeedRoutes reconciles the hub and route seed data, creating whatever is
// missing and reporting how many routes it created.
func (s *SeedService) SeedRoutes(ctx context.Context) (int, error) {
	created := 0
	for hubName, codes := range routesByHub {
		hub, err := s.hubs.GetOrCreate(ctx, hubName)
		if err != nil {
			return created, err
		}

		for _, code := range codes {
			existing, err := s.liquidaciones.FindRutaByHubAndCodeFold(ctx, hub.ID, code)
			if err != nil {
				return created, err
			}
			if existing != nil {
				continue
			}
			ruta := &model.LiquidacionRuta{HubID: hub.ID, Code: code, Active: true}
			if err := s.liquidaciones.CreateRuta(ctx, ruta); err != nil {
				return created, err
			}
			created++
			log.Info().Str("hub", hub.Name).Str("code", code).Msg("seed route created")
		}
	}
	return created, nil
}

// EnsureDemoAdmin creates the demo admin account when absent.
func (s *SeedService) EnsureDemoAdmin(ctx context.Context) error {
	admin, err := s.users.FindByEmail(ctx, demoAdminEmail)
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoAdminPassword), bcryptCost)
	if err != nil {
		return err
	}
	err = s.users.Create(ctx, &model.User{
		Email:        demoAdminEmail,
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	})
	if err != nil {
		return err
	}
	log.Info().Str("email", demoAdminEmail).Msg("demo admin created")
	return nil
}
