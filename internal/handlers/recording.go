package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryan-the-brodsky/tastemaker/internal/services"
)

type RecordingHandler struct {
	recordingService services.RecordingService
}

func NewRecordingHandler(recordingService services.RecordingService) *RecordingHandler {
	return &RecordingHandler{recordingService: recordingService}
}

func (rh *RecordingHandler) Create(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.CreateRecordingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	recording, err := rh.recordingService.Create(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{
		"recording_id": recording.ID,
		"status":       recording.Status,
	})
}

func (rh *RecordingHandler) Status(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	recordingID, ok := pathUUID(c, "recording_id")
	if !ok {
		return
	}
	status, err := rh.recordingService.Status(c.Request.Context(), userID, recordingID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, status)
}

func (rh *RecordingHandler) Results(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	recordingID, ok := pathUUID(c, "recording_id")
	if !ok {
		return
	}
	result, err := rh.recordingService.Results(c.Request.Context(), userID, recordingID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (rh *RecordingHandler) ListBySession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	recordings, err := rh.recordingService.ListBySession(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"recordings": recordings})
}
