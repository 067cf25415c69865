package service

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComprasFixture() (*ComprasService, *fakeCompraRepo) {
	repo := newFakeCompraRepo()
	return NewComprasService(NewHubService(newFakeHubRepo()), repo), repo
}

func flexDecimal(s string) *dto.FlexDecimal {
	return &dto.FlexDecimal{Decimal: decimal.RequireFromString(s)}
}

func flexIntPtr(v int) *dto.FlexInt {
	f := dto.FlexInt(v)
	return &f
}

func TestComprasAddDefaults(t *testing.T) {
	svc, _ := newComprasFixture()

	compra, err := svc.Add(context.Background(), "Caceres", &dto.AddCompraRequest{Item: " Guantes "})
	require.NoError(t, err)
	assert.Equal(t, "Guantes", compra.Item)
	assert.Equal(t, 0.0, compra.Precio)
	assert.Equal(t, 1, compra.Cantidad)
	assert.Equal(t, 0.0, compra.Total)
	assert.False(t, compra.Comprado)
}

func TestComprasAddLegacyDescripcionKey(t *testing.T) {
	svc, _ := newComprasFixture()

	compra, err := svc.Add(context.Background(), "Caceres", &dto.AddCompraRequest{
		Item:        "Guantes",
		Descripcion: "talla M",
	})
	require.NoError(t, err)
	assert.Equal(t, "talla M", compra.Especificaciones)
	assert.Equal(t, "talla M", compra.Descripcion)
}

func TestComprasAddComputesTotal(t *testing.T) {
	svc, _ := newComprasFixture()

	compra, err := svc.Add(context.Background(), "Caceres", &dto.AddCompraRequest{
		Item:     "Guantes",
		Precio:   flexDecimal("2.50"),
		Cantidad: flexIntPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, compra.Total)
}

func TestComprasAddValidations(t *testing.T) {
	svc, _ := newComprasFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Caceres", &dto.AddCompraRequest{Item: "  "})
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))

	_, err = svc.Add(ctx, "Caceres", &dto.AddCompraRequest{Item: "Guantes", Precio: flexDecimal("-1")})
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))

	_, err = svc.Add(ctx, "Caceres", &dto.AddCompraRequest{Item: "Guantes", Cantidad: flexIntPtr(0)})
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestComprasUpdatePatch(t *testing.T) {
	svc, _ := newComprasFixture()
	ctx := context.Background()

	compra, err := svc.Add(ctx, "Caceres", &dto.AddCompraRequest{
		Item: "Guantes", Especificaciones: "talla M", Precio: flexDecimal("2.50"), Cantidad: flexIntPtr(4),
	})
	require.NoError(t, err)

	comprado := true
	updated, err := svc.Update(ctx, "Hub Caceres", compra.ID, &dto.UpdateCompraRequest{
		Cantidad: flexIntPtr(10),
		Comprado: &comprado,
	})
	require.NoError(t, err)
	assert.Equal(t, "Guantes", updated.Item)
	assert.Equal(t, "talla M", updated.Especificaciones)
	assert.Equal(t, 10, updated.Cantidad)
	assert.Equal(t, 25.0, updated.Total)
	assert.True(t, updated.Comprado)
}

func TestComprasUpdateLegacyDescripcionKey(t *testing.T) {
	svc, _ := newComprasFixture()
	ctx := context.Background()

	compra, err := svc.Add(ctx, "Caceres", &dto.AddCompraRequest{Item: "Guantes", Especificaciones: "talla M"})
	require.NoError(t, err)

	nueva := "talla L"
	updated, err := svc.Update(ctx, "Caceres", compra.ID, &dto.UpdateCompraRequest{Descripcion: &nueva})
	require.NoError(t, err)
	assert.Equal(t, "talla L", updated.Especificaciones)
}

func TestComprasDeleteIsHard(t *testing.T) {
	svc, repo := newComprasFixture()
	ctx := context.Background()

	compra, err := svc.Add(ctx, "Caceres", &dto.AddCompraRequest{Item: "Guantes"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "Caceres", compra.ID))
	assert.Empty(t, repo.rows)

	err = svc.Delete(ctx, "Caceres", compra.ID)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestComprasCrossHubIsNotFound(t *testing.T) {
	svc, _ := newComprasFixture()
	ctx := context.Background()

	compra, err := svc.Add(ctx, "Caceres", &dto.AddCompraRequest{Item: "Guantes"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "Madrid", compra.ID, &dto.UpdateCompraRequest{})
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
