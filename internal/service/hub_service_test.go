package service

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNormalizeHubName(t *testing.T) {
	assert.Equal(t, "Hub Caceres", NormalizeHubName("  Hub   Caceres  "))
	assert.Equal(t, "", NormalizeHubName("   "))
}

func TestStripHubPrefix(t *testing.T) {
	assert.Equal(t, "Caceres", StripHubPrefix("Hub Caceres"))
	assert.Equal(t, "Caceres", StripHubPrefix("hub   Caceres"))
	assert.Equal(t, "Caceres", StripHubPrefix("Caceres"))
	assert.Equal(t, "Hubert", StripHubPrefix("Hubert"))
}

func TestHubCandidates(t *testing.T) {
	assert.Equal(t, []string{"Caceres", "Hub Caceres"}, HubCandidates("Caceres"))
	assert.Equal(t, []string{"Caceres", "Hub Caceres"}, HubCandidates("Hub Caceres"))
	assert.Equal(t, []string{"caceres", "Hub caceres"}, HubCandidates("  hub   caceres  "))
}

func TestGetOrCreateResolvesSameRowForAllSpellings(t *testing.T) {
	repo := newFakeHubRepo()
	svc := NewHubService(repo)
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "Hub Caceres")
	require.NoError(t, err)
	assert.Equal(t, "Caceres", first.Name)

	for _, spelling := range []string{"Caceres", "caceres", "HUB CACERES", "hub caceres"} {
		hub, err := svc.GetOrCreate(ctx, spelling)
		require.NoError(t, err)
		assert.Equal(t, first.ID, hub.ID, "spelling %q resolved a different hub", spelling)
	}
	hubs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hubs, 1)
}

func TestGetOrCreatePrefersUnprefixedRow(t *testing.T) {
	repo := newFakeHubRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Hub{Name: "Hub Madrid"}))
	require.NoError(t, repo.Create(ctx, &model.Hub{Name: "Madrid"}))

	svc := NewHubService(repo)
	hub, err := svc.GetOrCreate(ctx, "Hub Madrid")
	require.NoError(t, err)
	assert.Equal(t, "Madrid", hub.Name)
}

func TestGetOrCreateKeepsLegacyPrefixedRow(t *testing.T) {
	repo := newFakeHubRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Hub{Name: "Hub Vitoria"}))

	svc := NewHubService(repo)
	hub, err := svc.GetOrCreate(ctx, "Vitoria")
	require.NoError(t, err)
	assert.Equal(t, "Hub Vitoria", hub.Name)

	hubs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hubs, 1)
}

// racingHubRepo simulates a concurrent request winning the create: the insert
// lands (as the other request's row) and the duplicate-key error comes back.
type racingHubRepo struct {
	*fakeHubRepo
}

func (r *racingHubRepo) Create(ctx context.Context, hub *model.Hub) error {
	winner := &model.Hub{Name: hub.Name}
	if err := r.fakeHubRepo.Create(ctx, winner); err != nil {
		return err
	}
	return gorm.ErrDuplicatedKey
}

func TestGetOrCreateRecoversFromCreateRace(t *testing.T) {
	repo := &racingHubRepo{fakeHubRepo: newFakeHubRepo()}
	svc := NewHubService(repo)

	hub, err := svc.GetOrCreate(context.Background(), "Hub Cadiz")
	require.NoError(t, err)
	assert.Equal(t, "Cadiz", hub.Name)
	assert.NotZero(t, hub.ID)
}

func TestGetOrCreatePropagatesUnexpectedCreateError(t *testing.T) {
	repo := newFakeHubRepo()
	repo.createErr = gorm.ErrInvalidDB
	svc := NewHubService(repo)

	_, err := svc.GetOrCreate(context.Background(), "Cordoba")
	assert.Error(t, err)
}
