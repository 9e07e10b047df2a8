package http

import (
	"errors"
	"net/http"

	"researchtracker/internal/domain"
	"researchtracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Status    string `json:"status"`
	Tags      string `json:"tags"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r projectRequest) toInput() (usecase.ProjectInput, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.ProjectInput{}, err
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return usecase.ProjectInput{}, err
	}
	return usecase.ProjectInput{
		Title:     r.Title,
		Summary:   r.Summary,
		Status:    r.Status,
		Tags:      r.Tags,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.projects.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, toProjectResponse(project))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetProject(c *gin.Context) {
	project, err := s.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*project))
}

func (s *Server) handleCreateProject(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}
	project, err := s.projects.Create(c.Request.Context(), input, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(*project))
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}
	project, err := s.projects.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*project))
}

type projectStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateProjectStatus(c *gin.Context) {
	var req projectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	project, err := s.projects.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*project))
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	if err := s.projects.Delete(c.Request.Context(), c.Param("id")); err != nil && !isNotFound(err) {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deletes are idempotent at the HTTP surface; a missing row still yields 204.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
