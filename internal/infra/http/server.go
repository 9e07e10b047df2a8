package http

import (
	"context"
	"log"

	"researchtracker/internal/config"
	"researchtracker/internal/domain"
	"researchtracker/internal/infra/auth/policy"
	"researchtracker/internal/infra/auth/token"
	"researchtracker/internal/infra/db"
	"researchtracker/internal/infra/ratelimit"
	"researchtracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	codec      *token.Codec
	policy     *policy.Policy
	principals domain.PrincipalStore

	auth       *usecase.AuthService
	projects   *usecase.ProjectService
	milestones *usecase.MilestoneService
	documents  *usecase.DocumentService
	users      *usecase.UserService
	admin      *usecase.AdminService

	loginLimiter domain.RateLimiter
}

func NewServer(cfg config.Config, store *db.Store) (*Server, error) {
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := db.NewUserRepository(store.DB)
	projectRepo := db.NewProjectRepository(store.DB)
	milestoneRepo := db.NewMilestoneRepository(store.DB)
	documentRepo := db.NewDocumentRepository(store.DB)

	authService := usecase.NewAuthService(userRepo, codec)

	var limiter domain.RateLimiter
	if cfg.RedisAddr != "" {
		limiter, err = ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
	} else {
		limiter = ratelimit.NewMemoryLimiter(nil)
	}

	return NewServerWithDeps(cfg, ServerDeps{
		Codec:        codec,
		Policy:       policy.Default(),
		Principals:   authService,
		Auth:         authService,
		Projects:     usecase.NewProjectService(projectRepo),
		Milestones:   usecase.NewMilestoneService(milestoneRepo, projectRepo),
		Documents:    usecase.NewDocumentService(documentRepo, projectRepo),
		Users:        usecase.NewUserService(userRepo),
		Admin:        usecase.NewAdminService(userRepo, projectRepo, milestoneRepo),
		LoginLimiter: limiter,
	}), nil
}

type ServerDeps struct {
	Codec        *token.Codec
	Policy       *policy.Policy
	Principals   domain.PrincipalStore
	Auth         *usecase.AuthService
	Projects     *usecase.ProjectService
	Milestones   *usecase.MilestoneService
	Documents    *usecase.DocumentService
	Users        *usecase.UserService
	Admin        *usecase.AdminService
	LoginLimiter domain.RateLimiter
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:          cfg,
		r:            r,
		codec:        deps.Codec,
		policy:       deps.Policy,
		principals:   deps.Principals,
		auth:         deps.Auth,
		projects:     deps.Projects,
		milestones:   deps.Milestones,
		documents:    deps.Documents,
		users:        deps.Users,
		admin:        deps.Admin,
		loginLimiter: deps.LoginLimiter,
	}
	if s.policy == nil {
		s.policy = policy.Default()
	}
	s.routes()
	return s
}

// Bootstrap seeds the configured admin account on an empty user table.
func (s *Server) Bootstrap(ctx context.Context) error {
	return s.auth.EnsureAdmin(ctx,
		s.cfg.BootstrapAdminUsername,
		s.cfg.BootstrapAdminFullName,
		s.cfg.BootstrapAdminPassword,
	)
}

func (s *Server) Run() error {
	addr := s.cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("trackerd listening on %s", addr)
	return s.r.Run(addr)
}

// Handler exposes the engine for httptest.
func (s *Server) Handler() *gin.Engine {
	return s.r
}

func (s *Server) routes() {
	s.r.Use(
		corsMiddleware(s.cfg.CORSAllowedOrigin),
		s.authenticationFilter(),
		s.enforcePolicy(),
	)

	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.r.Group("/api")
	{
		api.POST("/auth/login", s.handleLogin)
		api.POST("/auth/register", s.handleRegister)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.GET("/projects/:id", s.handleGetProject)
		api.PUT("/projects/:id", s.handleUpdateProject)
		api.PATCH("/projects/:id/status", s.handleUpdateProjectStatus)
		api.DELETE("/projects/:id", s.handleDeleteProject)

		api.GET("/projects/:id/milestones", s.handleListMilestones)
		api.POST("/projects/:id/milestones", s.handleAddMilestone)
		api.PUT("/milestones/:id", s.handleUpdateMilestone)
		api.DELETE("/milestones/:id", s.handleDeleteMilestone)

		api.GET("/projects/:id/documents", s.handleListDocuments)
		api.POST("/projects/:id/documents", s.handleAddDocument)
		api.DELETE("/documents/:id", s.handleDeleteDocument)

		api.GET("/users", s.handleListUsers)
		api.PUT("/users/:id/role", s.handleUpdateUserRole)
		api.DELETE("/users/:id", s.handleDeleteUser)

		api.GET("/admin/stats", s.handleAdminStats)
	}
}
