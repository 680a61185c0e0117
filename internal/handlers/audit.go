package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ryan-the-brodsky/tastemaker/internal/services"
)

const maxScreenshotBytes = 10 << 20

type AuditHandler struct {
	auditService services.AuditService
}

func NewAuditHandler(auditService services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

type screenshotAuditRequest struct {
	ImageBase64 string `json:"image_base64"`
	MediaType   string `json:"media_type"`
}

// Screenshot accepts either a JSON body with a base64 image or a
// multipart upload under the "file" field.
func (ah *AuditHandler) Screenshot(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	imageBase64, mediaType, ok := readScreenshot(c)
	if !ok {
		return
	}
	result, err := ah.auditService.AuditScreenshot(c.Request.Context(), userID, sessionID, imageBase64, mediaType)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func readScreenshot(c *gin.Context) (imageBase64, mediaType string, ok bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "missing_file", err)
			return "", "", false
		}
		if fileHeader.Size > maxScreenshotBytes {
			RespondError(c, http.StatusBadRequest, "file_too_large", nil)
			return "", "", false
		}
		file, err := fileHeader.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "unreadable_file", err)
			return "", "", false
		}
		defer file.Close()
		raw, err := io.ReadAll(io.LimitReader(file, maxScreenshotBytes))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "unreadable_file", err)
			return "", "", false
		}
		mediaType = fileHeader.Header.Get("Content-Type")
		if mediaType == "" {
			mediaType = "image/png"
		}
		return base64.StdEncoding.EncodeToString(raw), mediaType, true
	}
	var req screenshotAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return "", "", false
	}
	if req.ImageBase64 == "" {
		RespondError(c, http.StatusBadRequest, "missing_image", nil)
		return "", "", false
	}
	if req.MediaType == "" {
		req.MediaType = "image/png"
	}
	return req.ImageBase64, req.MediaType, true
}
