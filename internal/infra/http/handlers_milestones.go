package http

import (
	"net/http"

	"researchtracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type milestoneRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
}

func (r milestoneRequest) toInput() (usecase.MilestoneInput, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.MilestoneInput{}, err
	}
	return usecase.MilestoneInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     dueDate,
		Completed:   r.Completed,
	}, nil
}

func (s *Server) handleListMilestones(c *gin.Context) {
	milestones, err := s.milestones.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]milestoneResponse, 0, len(milestones))
	for _, milestone := range milestones {
		out = append(out, toMilestoneResponse(milestone))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAddMilestone(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}
	milestone, err := s.milestones.Add(c.Request.Context(), c.Param("id"), input, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMilestoneResponse(*milestone))
}

func (s *Server) handleUpdateMilestone(c *gin.Context) {
	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}
	milestone, err := s.milestones.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMilestoneResponse(*milestone))
}

func (s *Server) handleDeleteMilestone(c *gin.Context) {
	if err := s.milestones.Delete(c.Request.Context(), c.Param("id")); err != nil && !isNotFound(err) {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
