package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturas-api/internal/application/auth"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.created = append(f.created, u)
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "facturas-test"}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.byEmail[email] = &entity.User{ID: "u-1", Name: "User", Email: email, PasswordHash: string(hash)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_DevuelveToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@nextmail.com", "123456")
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "user@nextmail.com", Password: "123456"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user@nextmail.com", out.User.Email)
}

// Email desconocido y contraseña incorrecta deben ser indistinguibles desde afuera.
func TestLogin_EmailDesconocidoYPasswordIncorrecta_MismoResultado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@nextmail.com", "123456")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@nextmail.com", Password: "123456"})
	_, errWrongPw := uc.Login(context.Background(), dto.LoginRequest{Email: "user@nextmail.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw, "no debe poder enumerarse cuentas por la respuesta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaLaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "User", Email: "user@nextmail.com", Password: "123456",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.NotEqual(t, "123456", repo.created[0].PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("123456")))
	assert.Equal(t, "user@nextmail.com", out.Email)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@nextmail.com", "123456")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "user@nextmail.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
