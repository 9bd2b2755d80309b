package handler

import (
	"agencydesk-server/internal/automation/processor"
	"agencydesk-server/internal/observability"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AutomationProcessor
	logger    *observability.Logger
}

func New(processor processor.AutomationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListTemplates handles GET /api/v1/email/templates
func (h *Handler) HandleListTemplates(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	templates, err := h.processor.ListTemplates(ctx, accountID)
	if err != nil {
		h.logger.Error(ctx, "failed to list email templates", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list email templates"})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTemplateRequest represents the HTTP request for creating an email template
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Event   string `json:"event" binding:"required"`
	Subject string `json:"subject" binding:"required,max=255"`
	Body    string `json:"body" binding:"required"`
}

// HandleCreateTemplate handles POST /api/v1/email/templates
func (h *Handler) HandleCreateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	template, err := h.processor.CreateTemplate(ctx, accountID, processor.CreateTemplateRequest{
		Name:    req.Name,
		Event:   req.Event,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create email template", err)
		if errors.Is(err, processor.ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create email template"})
		return
	}

	c.JSON(http.StatusCreated, template)
}

// UpdateTemplateRequest represents the HTTP request for updating an email template
type UpdateTemplateRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Subject *string `json:"subject,omitempty" binding:"omitempty,max=255"`
	Body    *string `json:"body,omitempty"`
}

// HandleUpdateTemplate handles PUT /api/v1/email/templates/:template_id
func (h *Handler) HandleUpdateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	// Get template ID from path
	templateIDStr := c.Param("template_id")
	templateID, err := uuid.Parse(templateIDStr)
	if err != nil {
		h.logger.Error(ctx, "failed to parse template ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	template, err := h.processor.UpdateTemplate(ctx, accountID, templateID, processor.UpdateTemplateRequest{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to update email template", err)
		if errors.Is(err, processor.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update email template"})
		return
	}

	c.JSON(http.StatusOK, template)
}

// HandleDeleteTemplate handles DELETE /api/v1/email/templates/:template_id
func (h *Handler) HandleDeleteTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	// Get template ID from path
	templateIDStr := c.Param("template_id")
	templateID, err := uuid.Parse(templateIDStr)
	if err != nil {
		h.logger.Error(ctx, "failed to parse template ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template id"})
		return
	}

	err = h.processor.DeleteTemplate(ctx, accountID, templateID)
	if err != nil {
		h.logger.Error(ctx, "failed to delete email template", err)
		if errors.Is(err, processor.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete email template"})
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListRules handles GET /api/v1/email/rules
func (h *Handler) HandleListRules(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	rules, err := h.processor.ListRules(ctx, accountID)
	if err != nil {
		h.logger.Error(ctx, "failed to list automation rules", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list automation rules"})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// CreateRuleRequest represents the HTTP request for creating an automation rule
type CreateRuleRequest struct {
	Event        string    `json:"event" binding:"required"`
	TemplateID   uuid.UUID `json:"template_id" binding:"required"`
	DelaySeconds int       `json:"delay_seconds"`
	Enabled      *bool     `json:"enabled"`
}

// HandleCreateRule handles POST /api/v1/email/rules
func (h *Handler) HandleCreateRule(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rule, err := h.processor.CreateRule(ctx, accountID, processor.CreateRuleRequest{
		Event:        req.Event,
		TemplateID:   req.TemplateID,
		DelaySeconds: req.DelaySeconds,
		Enabled:      req.Enabled,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create automation rule", err)
		if errors.Is(err, processor.ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event"})
			return
		}
		if errors.Is(err, processor.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "email template not found"})
			return
		}
		if errors.Is(err, processor.ErrTemplateEventMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "template does not serve this event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create automation rule"})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// HandleToggleRule handles POST /api/v1/email/rules/:rule_id/toggle
func (h *Handler) HandleToggleRule(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	// Get rule ID from path
	ruleIDStr := c.Param("rule_id")
	ruleID, err := uuid.Parse(ruleIDStr)
	if err != nil {
		h.logger.Error(ctx, "failed to parse rule ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}

	rule, err := h.processor.ToggleRule(ctx, accountID, ruleID)
	if err != nil {
		h.logger.Error(ctx, "failed to toggle automation rule", err)
		if errors.Is(err, processor.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "automation rule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle automation rule"})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// HandleGetSettings handles GET /api/v1/email/settings
func (h *Handler) HandleGetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	settings, err := h.processor.GetSettings(ctx, accountID)
	if err != nil {
		h.logger.Error(ctx, "failed to get email settings", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get email settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsRequest represents the HTTP request for updating email settings
type UpdateSettingsRequest struct {
	Enabled           bool   `json:"enabled"`
	FromName          string `json:"from_name" binding:"max=255"`
	ReplyTo           string `json:"reply_to" binding:"omitempty,email"`
	ReminderDelayDays int    `json:"reminder_delay_days" binding:"omitempty,min=1,max=90"`
}

// HandleUpdateSettings handles PUT /api/v1/email/settings
func (h *Handler) HandleUpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	// Get account ID from context
	accountIDStr, exists := c.Get("Account-ID")
	if !exists {
		h.logger.Error(ctx, "account ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	accountID, err := uuid.Parse(accountIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse account ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.ReminderDelayDays == 0 {
		req.ReminderDelayDays = 7
	}

	settings, err := h.processor.UpdateSettings(ctx, accountID, processor.UpdateSettingsRequest{
		Enabled:           req.Enabled,
		FromName:          req.FromName,
		ReplyTo:           req.ReplyTo,
		ReminderDelayDays: req.ReminderDelayDays,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to update email settings", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update email settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
