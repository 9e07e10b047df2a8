package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"researchtracker/internal/domain"
	"researchtracker/internal/infra/auth/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the bcrypt comparison on the unknown-user path so login
// timing does not reveal whether a username exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService issues tokens at login and resolves principals from token
// subjects on every request. It is the PrincipalStore for the HTTP filter.
type AuthService struct {
	Users UserRepository
	Codec *token.Codec
	Clock func() time.Time
}

func NewAuthService(users UserRepository, codec *token.Codec) *AuthService {
	return &AuthService{Users: users, Codec: codec, Clock: time.Now}
}

type LoginResult struct {
	Token string
	User  domain.Principal
}

// Login verifies the credentials and issues a token. Unknown username and
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return LoginResult{}, domain.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	signed, err := s.Codec.Issue(user.ID, s.now())
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: signed, User: user.Principal()}, nil
}

type RegisterInput struct {
	Username string
	FullName string
	Password string
}

// Register creates a user with the default VIEWER role. Role escalation is an
// admin operation, never part of self-registration.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.Principal, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return domain.Principal{}, domain.ErrInvalidArgument
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Principal{}, err
	}
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hash),
		Role:         domain.RoleViewer,
		CreatedAt:    s.now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return domain.Principal{}, err
	}
	return user.Principal(), nil
}

// EnsureAdmin seeds the configured admin account when the user table is
// empty, so a fresh deployment has a way in. Existing data is never touched.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, fullName, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}
	count, err := s.Users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    s.now(),
	})
}

// LoadBySubject re-resolves the principal for a verified token subject. The
// role comes from the store, not the token, so a role change or a deleted
// account takes effect on the next request.
func (s *AuthService) LoadBySubject(ctx context.Context, subjectID string) (domain.Principal, error) {
	user, err := s.Users.GetByID(ctx, subjectID)
	if err != nil {
		return domain.Principal{}, err
	}
	return user.Principal(), nil
}

func (s *AuthService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
