package http

import (
	"github.com/gin-gonic/gin"

	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/model"
)

// --- Request DTOs ---

type processMessageReq struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
	CaseID  string `json:"case_id"`
}

func (r processMessageReq) validate() error { return nil }

func (r processMessageReq) toInput() assistant.ProcessMessageInput {
	return assistant.ProcessMessageInput{Message: r.Message}
}

func (r processMessageReq) toScope(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	return model.Scope{UserID: userID, CaseID: r.CaseID}
}

// --- Response DTOs ---

type processMessageResp struct {
	Actions       []assistant.ProposedAction `json:"actions"`
	Reply         string                     `json:"reply"`
	IsHelpQuery   bool                       `json:"is_help_query"`
	IsStatusQuery bool                       `json:"is_status_query"`
}

func (h *handler) newProcessMessageResp(out assistant.ProcessMessageOutput) processMessageResp {
	actions := out.Actions
	if actions == nil {
		actions = []assistant.ProposedAction{}
	}
	return processMessageResp{
		Actions:       actions,
		Reply:         out.Reply,
		IsHelpQuery:   out.IsHelpQuery,
		IsStatusQuery: out.IsStatusQuery,
	}
}
