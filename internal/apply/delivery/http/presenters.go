package http

import (
	"github.com/gin-gonic/gin"

	"legal-practice-assistant/internal/apply"
	"legal-practice-assistant/internal/assistant"
	"legal-practice-assistant/internal/model"
	"legal-practice-assistant/pkg/response"
)

// --- Request DTOs ---

type applyReq struct {
	Actions []assistant.ProposedAction `json:"actions" binding:"required"`
	CaseID  string                     `json:"case_id"`
}

func (r applyReq) validate() error { return nil }

func (r applyReq) toInput() apply.ApplyInput {
	return apply.ApplyInput{Actions: r.Actions}
}

func (r applyReq) toScope(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	return model.Scope{UserID: userID, CaseID: r.CaseID}
}

// --- Response DTOs ---

type applyResp struct {
	Results []apply.ActionResult `json:"results"`
	Applied int                  `json:"applied"`
	Skipped int                  `json:"skipped"`
}

func (h *handler) newApplyResp(out apply.ApplyOutput) applyResp {
	results := out.Results
	if results == nil {
		results = []apply.ActionResult{}
	}
	return applyResp{
		Results: results,
		Applied: out.Applied,
		Skipped: out.Skipped,
	}
}

// ---

type activityReq struct {
	Limit int `form:"limit"`
}

func (r activityReq) toInput() apply.ActivityInput {
	return apply.ActivityInput{Limit: r.Limit}
}

func (r activityReq) toScope(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	return model.Scope{UserID: userID}
}

type auditEntryResp struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	ActionType string            `json:"action_type"`
	Entity     string            `json:"entity"`
	EntityID   string            `json:"entity_id"`
	Summary    string            `json:"summary"`
	CreatedAt  response.DateTime `json:"created_at"`
}

type activityResp struct {
	Entries []auditEntryResp `json:"entries"`
}

func (h *handler) newActivityResp(out apply.ActivityOutput) activityResp {
	entries := make([]auditEntryResp, len(out.Records))
	for i, rec := range out.Records {
		entries[i] = auditEntryResp{
			ID:         rec.ID,
			ActorID:    rec.ActorID,
			ActionType: rec.ActionType,
			Entity:     rec.Entity,
			EntityID:   rec.EntityID,
			Summary:    rec.Summary,
			CreatedAt:  response.DateTime(rec.CreatedAt),
		}
	}
	return activityResp{Entries: entries}
}
