package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ryan-the-brodsky/tastemaker/internal/services"
)

type ComparisonHandler struct {
	comparisonService services.ComparisonService
}

func NewComparisonHandler(comparisonService services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparisonService: comparisonService}
}

func (ch *ComparisonHandler) Next(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	comparison, err := ch.comparisonService.Next(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, comparison)
}

func (ch *ComparisonHandler) SubmitChoice(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	comparisonID, err := strconv.Atoi(c.Param("comparison_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.SubmitChoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	req.ComparisonID = comparisonID
	progress, err := ch.comparisonService.SubmitChoice(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, progress)
}

func (ch *ComparisonHandler) Batch(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req struct {
		BatchSize int `json:"batch_size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	batch, err := ch.comparisonService.Batch(c.Request.Context(), userID, sessionID, req.BatchSize)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, batch)
}

func (ch *ComparisonHandler) LockIn(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.LockInInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := ch.comparisonService.LockIn(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
