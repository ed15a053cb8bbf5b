package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/odutech/internal/audit"
	domain "github.com/BruksfildServices01/odutech/internal/domain/user"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Admin padrão criado quando o banco não tem usuários.
const (
	SeedUsername = "admin"
	SeedEmail    = "admin@email.com"
	SeedPassword = "admin123"
)

type Accounts struct {
	repo    domain.Repository
	uploads *storage.Uploads
	audit   *audit.Dispatcher
	cost    int
}

func NewAccounts(
	repo domain.Repository,
	uploads *storage.Uploads,
	audit *audit.Dispatcher,
) *Accounts {
	return &Accounts{
		repo:    repo,
		uploads: uploads,
		audit:   audit,
		cost:    bcrypt.DefaultCost,
	}
}

// ======================================================
// REGISTER
// ======================================================

func (uc *Accounts) Register(ctx context.Context, in domain.Credentials) (*models.User, error) {
	creds, err := domain.Normalize(in)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: string(hashed),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
	})
	return u, nil
}

// ======================================================
// LOGIN
// ======================================================

// Authenticate não distingue e-mail inexistente de senha errada.
func (uc *Accounts) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := uc.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// ======================================================
// ADMIN
// ======================================================

func (uc *Accounts) List(ctx context.Context) ([]models.User, error) {
	return uc.repo.List(ctx)
}

// EnsureSeed cria o admin padrão se ainda não houver nenhum usuário.
func (uc *Accounts) EnsureSeed(ctx context.Context) (*models.User, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil || n > 0 {
		return nil, err
	}
	return uc.Register(ctx, domain.Credentials{
		Username: SeedUsername,
		Email:    SeedEmail,
		Password: SeedPassword,
	})
}

// Delete remove o usuário em cascata e depois os arquivos dele.
func (uc *Accounts) Delete(ctx context.Context, username string) error {
	u, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	removed, err := uc.repo.Delete(ctx, u.ID)
	if err != nil {
		return err
	}

	for _, d := range removed.Documents {
		uc.uploads.RemoveRel(d.StoredPath)
	}
	for _, p := range removed.PhotoPaths {
		uc.uploads.RemoveRel(p)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
