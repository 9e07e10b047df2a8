package usecase

import "context"

type AdminService struct {
	Users      UserRepository
	Projects   ProjectRepository
	Milestones MilestoneRepository
}

func NewAdminService(users UserRepository, projects ProjectRepository, milestones MilestoneRepository) *AdminService {
	return &AdminService{Users: users, Projects: projects, Milestones: milestones}
}

type Stats struct {
	Users      int64 `json:"users"`
	Projects   int64 `json:"projects"`
	Milestones int64 `json:"milestones"`
}

func (s *AdminService) Stats(ctx context.Context) (Stats, error) {
	users, err := s.Users.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	projects, err := s.Projects.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	milestones, err := s.Milestones.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Users: users, Projects: projects, Milestones: milestones}, nil
}
