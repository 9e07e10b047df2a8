package http

import (
	"net/http"

	"researchtracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type documentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URLOrPath   string `json:"urlOrPath"`
}

func (s *Server) handleListDocuments(c *gin.Context) {
	documents, err := s.documents.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]documentResponse, 0, len(documents))
	for _, document := range documents {
		out = append(out, toDocumentResponse(document))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAddDocument(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}
	document, err := s.documents.Add(c.Request.Context(), c.Param("id"), usecase.DocumentInput{
		Title:       req.Title,
		Description: req.Description,
		URLOrPath:   req.URLOrPath,
	}, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDocumentResponse(*document))
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	if err := s.documents.Delete(c.Request.Context(), c.Param("id")); err != nil && !isNotFound(err) {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
