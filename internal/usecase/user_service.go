package usecase

import (
	"context"

	"researchtracker/internal/domain"
)

// UserService covers the admin-only user management surface.
type UserService struct {
	Users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.Principal, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	principals := make([]domain.Principal, 0, len(users))
	for _, user := range users {
		principals = append(principals, user.Principal())
	}
	return principals, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role string) (domain.Principal, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return domain.Principal{}, err
	}
	if err := s.Users.UpdateRole(ctx, id, parsed); err != nil {
		return domain.Principal{}, err
	}
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return domain.Principal{}, err
	}
	return user.Principal(), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Users.Delete(ctx, id)
}
