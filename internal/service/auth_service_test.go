package service

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, "test-secret", 24), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), " Gabriel ", " Perez ", " GABI@Example.com ", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, "gabi@example.com", user.Email)
	assert.Equal(t, "Gabriel Perez", user.Name)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secreto1", user.PasswordHash)
}

func TestRegisterValidations(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	cases := []struct{ name, lastName, email, password string }{
		{"", "Perez", "gabi@example.com", "secreto1"},
		{"Gabriel", "", "gabi@example.com", "secreto1"},
		{"Gabriel", "Perez", "sin-arroba", "secreto1"},
		{"Gabriel", "Perez", "gabi@example.com", "corta"},
	}
	for _, c := range cases {
		_, err := svc.Register(ctx, c.name, c.lastName, c.email, c.password)
		assert.True(t, apierror.IsKind(err, apierror.KindValidation), "expected validation error for %+v", c)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Gabriel", "Perez", "gabi@example.com", "secreto1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Otro", "Usuario", "Gabi@Example.com", "secreto2")
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Gabriel", "Perez", "gabi@example.com", "secreto1")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, " Gabi@Example.com ", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, "gabi@example.com", user.Email)

	claims := &middleware.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "gabi@example.com", claims.Email)
	assert.Equal(t, "Gabriel Perez", claims.Name)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Gabriel", "Perez", "gabi@example.com", "secreto1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "gabi@example.com", "equivocada")
	assert.True(t, apierror.IsKind(err, apierror.KindUnauthorized))

	_, _, err = svc.Login(ctx, "nadie@example.com", "secreto1")
	assert.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
}

func TestMe(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Gabriel", "Perez", "gabi@example.com", "secreto1")
	require.NoError(t, err)

	user, err := svc.Me(ctx, "gabi@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Gabriel Perez", user.Name)

	_, err = svc.Me(ctx, "nadie@example.com")
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
