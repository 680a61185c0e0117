package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryan-the-brodsky/tastemaker/internal/services"
)

type StudioHandler struct {
	studioService services.StudioService
}

func NewStudioHandler(studioService services.StudioService) *StudioHandler {
	return &StudioHandler{studioService: studioService}
}

func (sh *StudioHandler) Progress(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	progress, err := sh.studioService.Progress(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, progress)
}

func (sh *StudioHandler) Dimensions(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	dims, err := sh.studioService.Dimensions(c.Request.Context(), userID, sessionID, c.Param("component_type"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, dims)
}

func (sh *StudioHandler) ComponentState(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	state, err := sh.studioService.ComponentState(c.Request.Context(), userID, sessionID, c.Param("component_type"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, state)
}

func (sh *StudioHandler) SubmitDimensionChoice(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.DimensionChoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := sh.studioService.SubmitDimensionChoice(c.Request.Context(), userID, sessionID, c.Param("component_type"), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (sh *StudioHandler) LockComponent(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	result, err := sh.studioService.LockCurrentComponent(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (sh *StudioHandler) Checkpoint(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	data, err := sh.studioService.Checkpoint(c.Request.Context(), userID, sessionID, c.Param("checkpoint_id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, data)
}

func (sh *StudioHandler) ApproveCheckpoint(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	result, err := sh.studioService.ApproveCheckpoint(c.Request.Context(), userID, sessionID, c.Param("checkpoint_id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (sh *StudioHandler) GoBack(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	if err := sh.studioService.GoBack(c.Request.Context(), userID, sessionID, c.Param("component_type")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "component reopened for editing"})
}

func (sh *StudioHandler) PreviewStyles(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	styles, err := sh.studioService.PreviewStyles(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"styles": styles})
}
