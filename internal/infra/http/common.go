package http

import (
	"errors"
	"net/http"
	"time"

	"researchtracker/internal/domain"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func toUserResponse(p domain.Principal) userResponse {
	return userResponse{
		ID:       p.Subject,
		Username: p.Username,
		FullName: p.FullName,
		Role:     string(p.Role),
	}
}

type projectResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	Status    string  `json:"status"`
	PIID      string  `json:"piId"`
	Tags      string  `json:"tags"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Status:    string(p.Status),
		PIID:      p.PIID,
		Tags:      p.Tags,
		StartDate: formatDate(p.StartDate),
		EndDate:   formatDate(p.EndDate),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type milestoneResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
}

func toMilestoneResponse(m domain.Milestone) milestoneResponse {
	return milestoneResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     formatDate(m.DueDate),
		Completed:   m.Completed,
	}
}

type documentResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URLOrPath   string `json:"urlOrPath"`
	UploadedAt  string `json:"uploadedAt"`
}

func toDocumentResponse(d domain.Document) documentResponse {
	return documentResponse{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Title:       d.Title,
		Description: d.Description,
		URLOrPath:   d.URLOrPath,
		UploadedAt:  d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domain.ErrInvalidArgument
	}
	return &parsed, nil
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		writeErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeErrorCode(c, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrConflict):
		writeErrorCode(c, http.StatusConflict, "CONFLICT", "conflict")
	case errors.Is(err, domain.ErrInvalidArgument):
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid argument")
	default:
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: message})
}
