package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryan-the-brodsky/tastemaker/internal/services"
)

type ExplorationHandler struct {
	explorationService services.ExplorationService
}

func NewExplorationHandler(explorationService services.ExplorationService) *ExplorationHandler {
	return &ExplorationHandler{explorationService: explorationService}
}

func (eh *ExplorationHandler) PaletteOptions(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	options, err := eh.explorationService.PaletteOptions(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, options)
}

func (eh *ExplorationHandler) SelectPalette(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.ExplorationSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	progress, err := eh.explorationService.SelectPalette(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, progress)
}

func (eh *ExplorationHandler) TypographyOptions(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	options, err := eh.explorationService.TypographyOptions(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, options)
}

func (eh *ExplorationHandler) SelectTypography(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.ExplorationSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	progress, err := eh.explorationService.SelectTypography(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, progress)
}
