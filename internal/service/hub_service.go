package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HubService resolves free-form hub names ("Caceres", "hub caceres",
// "Hub Caceres") to exactly one Hub row, creating it on first reference.
// The canonical stored name never carries the "Hub " prefix.
type HubService struct {
	hubs repository.HubRepository
}

func NewHubService(hubs repository.HubRepository) *HubService {
	return &HubService{hubs: hubs}
}

// NormalizeHubName trims and collapses internal whitespace.
func NormalizeHubName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// StripHubPrefix removes a leading "Hub " (any case) from a normalized name.
func StripHubPrefix(name string) string {
	name = NormalizeHubName(name)
	if len(name) >= 4 && strings.EqualFold(name[:4], "hub ") {
		return NormalizeHubName(name[4:])
	}
	return name
}

// HubCandidates returns the lookup order for a raw hub name: the unprefixed
// form always first, then the "Hub "-prefixed form, case-insensitively
// deduplicated.
func HubCandidates(name string) []string {
	noPrefix := StripHubPrefix(name)
	withPrefix := NormalizeHubName("Hub " + noPrefix)

	out := make([]string, 0, 2)
	seen := make(map[string]bool, 2)
	for _, cand := range []string{noPrefix, withPrefix} {
		key := strings.ToLower(cand)
		if !seen[key] {
			seen[key] = true
			out = append(out, cand)
		}
	}
	return out
}

// GetOrCreate resolves name to its Hub row. Lookup tries each candidate
// case-insensitively; a miss creates the row under the canonical unprefixed
// name. A duplicate-key error on create means another request won the race,
// so the candidates are resolved again instead of failing.
func (s *HubService) GetOrCreate(ctx context.Context, name string) (*model.Hub, error) {
	for _, cand := range HubCandidates(name) {
		hub, err := s.hubs.FindByNameFold(ctx, cand)
		if err != nil {
			return nil, err
		}
		if hub != nil {
			return hub, nil
		}
	}

	hub := &model.Hub{Name: StripHubPrefix(name)}
	err := s.hubs.Create(ctx, hub)
	if err == nil {
		log.Info().Str("hub", hub.Name).Msg("hub created")
		return hub, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	for _, cand := range HubCandidates(name) {
		existing, ferr := s.hubs.FindByNameFold(ctx, cand)
		if ferr != nil {
			return nil, ferr
		}
		if existing != nil {
			return existing, nil
		}
	}
	return nil, err
}
