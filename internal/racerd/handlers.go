package racerd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/raceday-ai/racerd/internal/agent"
	"github.com/raceday-ai/racerd/internal/logging"
	"github.com/raceday-ai/racerd/internal/templates"
)

// Handler implements the HTTP endpoints of the daemon.
type Handler struct {
	agent    *agent.Service
	registry *templates.Registry
	logger   zerolog.Logger
}

// NewHandler builds the endpoint handlers around an agent service.
func NewHandler(svc *agent.Service, registry *templates.Registry) *Handler {
	return &Handler{
		agent:    svc,
		registry: registry,
		logger:   logging.Component("http"),
	}
}

type generateRequest struct {
	TemplateName string         `json:"template_name" binding:"required"`
	ContextData  map[string]any `json:"context_data"`
}

// Generate resolves a template against the agent context plus the
// per-request values and returns the rendered post text.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	text, err := h.agent.Speak(req.TemplateName, req.ContextData)
	if err != nil {
		respondError(c, statusForError(err), err.Error())
		return
	}
	respondOK(c, "post generated", gin.H{
		"template_name": req.TemplateName,
		"post_text":     text,
	})
}

// statusForError maps template resolution failures to HTTP status
// codes. Definition errors surface as 500 because they indicate a
// broken template that slipped past startup validation.
func statusForError(err error) int {
	var notFound *templates.NotFoundError
	var missing *templates.MissingVariablesError
	var definition *templates.DefinitionError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &definition):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

type updateContextRequest struct {
	ContextData map[string]any `json:"context_data" binding:"required"`
}

// UpdateContext merges context_data into the agent context and returns
// the resulting full context.
func (h *Handler) UpdateContext(c *gin.Context) {
	var req updateContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	merged := h.agent.Think(req.ContextData)
	respondOK(c, "context updated", merged)
}

// GetContext returns the current agent context.
func (h *Handler) GetContext(c *gin.Context) {
	respondOK(c, "current context", h.agent.Context())
}

type simulateLikeRequest struct {
	PostID string `json:"post_id" binding:"required"`
	UserID string `json:"user_id"`
}

// SimulateLike simulates liking a post. Nothing is published.
func (h *Handler) SimulateLike(c *gin.Context) {
	var req simulateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	rec := h.agent.Like(req.PostID, req.UserID)
	respondOK(c, rec.Details, gin.H{"action": rec})
}

type simulateRequest struct {
	ActionType string         `json:"action_type" binding:"required"`
	ActionData map[string]any `json:"action_data"`
}

// Simulate performs an arbitrary simulated action. Every action type
// is accepted and reported as success.
func (h *Handler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	rec := h.agent.Act(req.ActionType, req.ActionData)
	respondOK(c, rec.Details, gin.H{"action": rec})
}

type replyCommentRequest struct {
	CommentText   string `json:"comment_text" binding:"required"`
	AgentResponse string `json:"agent_response" binding:"required"`
}

// ReplyComment simulates replying to a fan comment.
func (h *Handler) ReplyComment(c *gin.Context) {
	var req replyCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	rec := h.agent.ReplyComment(req.CommentText, req.AgentResponse)
	respondOK(c, rec.Details, gin.H{"action": rec})
}

// Actions returns the recent simulated actions, oldest first.
func (h *Handler) Actions(c *gin.Context) {
	history := h.agent.Actions()
	respondOK(c, "recent actions", gin.H{
		"count":   len(history),
		"actions": history,
	})
}

type variableInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
}

type templateInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Source      string         `json:"source,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Variables   []variableInfo `json:"variables"`
}

// Templates lists the registered templates and their variables.
func (h *Handler) Templates(c *gin.Context) {
	infos := make([]templateInfo, 0, h.registry.Len())
	for _, tmpl := range h.registry.All() {
		info := templateInfo{
			Name:        tmpl.Name,
			Description: tmpl.Description,
			Source:      tmpl.Source,
			Tags:        tmpl.Tags,
			Variables:   make([]variableInfo, 0, len(tmpl.Variables)),
		}
		for _, v := range tmpl.Variables {
			info.Variables = append(info.Variables, variableInfo{
				Name:        v.Name,
				Description: v.Description,
				Required:    v.Required,
				Default:     v.Default,
			})
		}
		infos = append(infos, info)
	}
	respondOK(c, "registered templates", gin.H{
		"count":     len(infos),
		"templates": infos,
	})
}

// HealthCheck reports daemon liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
