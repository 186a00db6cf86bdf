package services

import (
	"context"
	"strings"

	"blogapi/internal/apperr"
	"blogapi/internal/auth"
	"blogapi/internal/metrics"
	"blogapi/internal/models"
	repo "blogapi/internal/repository"
)

type UserService struct {
	users  repo.Users
	tokens *auth.TokenService
}

func NewUserService(users repo.Users, tokens *auth.TokenService) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register validates, hashes and creates the account, then issues a token
// for it. Validation failures carry every violated rule; a taken email is a
// duplicate error from the repo's unique constraint.
func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	creds, err := auth.ValidateCredentials(name, email, password)
	if err != nil {
		return models.User{}, "", err
	}
	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return models.User{}, "", err
	}
	u, err := s.users.Create(ctx, creds.Name, creds.Email, hash, models.RoleUser)
	if err != nil {
		return models.User{}, "", err
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

// Login returns the identical error for an unknown email and a wrong
// password so the response never confirms whether an address is registered.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, "", apperr.Validation("email and password are required")
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !auth.VerifyPassword(password, u.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return models.User{}, "", apperr.Unauthenticated("invalid email or password")
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return u, token, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// ProfileUpdate carries the updatable account fields; nil means unchanged.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Role      *string `json:"role"`
}

// UpdateProfile lets an account edit itself and an admin edit anyone.
// A role change is applied only when the principal is an admin; for anyone
// else the field is ignored rather than rejected.
func (s *UserService) UpdateProfile(ctx context.Context, principal models.User, id string, in ProfileUpdate) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !auth.CanMutate(principal, u) {
		return models.User{}, apperr.Forbidden()
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 2 {
			return models.User{}, apperr.Validation("name must be at least 2 characters")
		}
		u.Name = name
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if in.Role != nil && principal.IsAdmin() {
		if *in.Role != models.RoleUser && *in.Role != models.RoleAdmin {
			return models.User{}, apperr.Validation("role must be user or admin")
		}
		u.Role = *in.Role
	}
	if err := s.users.Update(ctx, u); err != nil {
		return models.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

// DeleteAccount removes an account (self or admin). Authored posts and
// comments cascade away with it.
func (s *UserService) DeleteAccount(ctx context.Context, principal models.User, id string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(principal, u) {
		return apperr.Forbidden()
	}
	return s.users.Delete(ctx, id)
}
