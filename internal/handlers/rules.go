package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryan-the-brodsky/tastemaker/internal/services"
)

type RuleHandler struct {
	ruleService services.RuleService
}

func NewRuleHandler(ruleService services.RuleService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

func (rh *RuleHandler) List(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	ruleRows, err := rh.ruleService.List(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, ruleRows)
}

func (rh *RuleHandler) AddStated(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.StatedRuleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rule, err := rh.ruleService.AddStated(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, rule)
}

func (rh *RuleHandler) Update(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	var req services.RuleUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rule, err := rh.ruleService.Update(c.Request.Context(), userID, sessionID, c.Param("rule_id"), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rule)
}

func (rh *RuleHandler) Delete(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "session_id")
	if !ok {
		return
	}
	if err := rh.ruleService.Delete(c.Request.Context(), userID, sessionID, c.Param("rule_id")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
