package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"agencydesk-server/internal/observability"
	"agencydesk-server/internal/render"
	"agencydesk-server/internal/store"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AutomationStore defines the database operations required by AutomationProcessor
type AutomationStore interface {
	CreateEmailTemplate(ctx context.Context, params store.CreateEmailTemplateParams) (store.EmailTemplate, error)
	GetEmailTemplateByID(ctx context.Context, templateID uuid.UUID) (store.EmailTemplate, error)
	GetEmailTemplatesByAccount(ctx context.Context, accountID uuid.UUID) ([]store.EmailTemplate, error)
	GetEmailTemplateByEvent(ctx context.Context, accountID uuid.UUID, event string) (store.EmailTemplate, error)
	UpdateEmailTemplate(ctx context.Context, templateID uuid.UUID, params store.UpdateEmailTemplateParams) (store.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, templateID uuid.UUID) error
	CreateAutomationRule(ctx context.Context, params store.CreateAutomationRuleParams) (store.AutomationRule, error)
	GetAutomationRuleByID(ctx context.Context, ruleID uuid.UUID) (store.AutomationRule, error)
	GetAutomationRulesByAccount(ctx context.Context, accountID uuid.UUID) ([]store.AutomationRule, error)
	GetEnabledAutomationRulesByEvent(ctx context.Context, accountID uuid.UUID, event string) ([]store.AutomationRule, error)
	GetAutomationRuleByEvent(ctx context.Context, accountID uuid.UUID, event string) (store.AutomationRule, error)
	UpdateAutomationRuleEnabled(ctx context.Context, ruleID uuid.UUID, enabled bool) (store.AutomationRule, error)
	GetEmailSettings(ctx context.Context, accountID uuid.UUID) (store.EmailSettings, error)
	UpsertEmailSettings(ctx context.Context, params store.UpsertEmailSettingsParams) (store.EmailSettings, error)
	EnqueueEmail(ctx context.Context, params store.EnqueueEmailParams) (store.QueueItem, error)
}

var (
	ErrTemplateNotFound      = errors.New("email template not found")
	ErrRuleNotFound          = errors.New("automation rule not found")
	ErrInvalidEvent          = errors.New("invalid automation event")
	ErrTemplateEventMismatch = errors.New("template event does not match rule event")
)

type AutomationProcessor struct {
	store  AutomationStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store AutomationStore, logger *observability.Logger) AutomationProcessor {
	return AutomationProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListTemplates retrieves all email templates for a tenant
func (p *AutomationProcessor) ListTemplates(ctx context.Context, accountID uuid.UUID) ([]store.EmailTemplate, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
	)

	templates, err := p.store.GetEmailTemplatesByAccount(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to list email templates", err)
		return nil, err
	}

	// Ensure templates is never null - return empty array instead
	if templates == nil {
		templates = []store.EmailTemplate{}
	}

	return templates, nil
}

// CreateTemplateRequest represents a request to create an email template
type CreateTemplateRequest struct {
	Name    string
	Event   string
	Subject string
	Body    string
}

// CreateTemplate creates a new email template for a tenant. Placeholder
// variables are extracted from the subject and body.
func (p *AutomationProcessor) CreateTemplate(ctx context.Context, accountID uuid.UUID, req CreateTemplateRequest) (store.EmailTemplate, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "event", Value: req.Event},
	)

	if !store.IsValidAutomationEvent(req.Event) {
		return store.EmailTemplate{}, ErrInvalidEvent
	}

	variables := store.StringList(render.PlaceholderNames(req.Subject + req.Body))

	template, err := p.store.CreateEmailTemplate(ctx, store.CreateEmailTemplateParams{
		AccountID: accountID,
		Name:      req.Name,
		Event:     req.Event,
		Subject:   req.Subject,
		Body:      req.Body,
		Variables: variables,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create email template", err)
		return store.EmailTemplate{}, err
	}

	p.logger.Info(ctx, "email template created successfully")
	return template, nil
}

// UpdateTemplateRequest represents a request to update an email template
type UpdateTemplateRequest struct {
	Name    *string
	Subject *string
	Body    *string
}

// UpdateTemplate updates a tenant's email template content
func (p *AutomationProcessor) UpdateTemplate(ctx context.Context, accountID, templateID uuid.UUID, req UpdateTemplateRequest) (store.EmailTemplate, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "template_id", Value: templateID.String()},
	)

	existing, err := p.store.GetEmailTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to get email template", err)
		return store.EmailTemplate{}, err
	}

	// Foreign-tenant templates are indistinguishable from missing ones.
	if existing.AccountID != accountID {
		return store.EmailTemplate{}, ErrTemplateNotFound
	}

	params := store.UpdateEmailTemplateParams{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	}

	// Re-derive the variable list when content changes.
	if req.Subject != nil || req.Body != nil {
		subject := existing.Subject
		if req.Subject != nil {
			subject = *req.Subject
		}
		body := existing.Body
		if req.Body != nil {
			body = *req.Body
		}
		variables := store.StringList(render.PlaceholderNames(subject + body))
		params.Variables = &variables
	}

	template, err := p.store.UpdateEmailTemplate(ctx, templateID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to update email template", err)
		return store.EmailTemplate{}, err
	}

	p.logger.Info(ctx, "email template updated successfully")
	return template, nil
}

// DeleteTemplate deletes a tenant's email template
func (p *AutomationProcessor) DeleteTemplate(ctx context.Context, accountID, templateID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "template_id", Value: templateID.String()},
	)

	existing, err := p.store.GetEmailTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to get email template", err)
		return err
	}

	if existing.AccountID != accountID {
		return ErrTemplateNotFound
	}

	if err := p.store.DeleteEmailTemplate(ctx, templateID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to delete email template", err)
		return err
	}

	p.logger.Info(ctx, "email template deleted successfully")
	return nil
}

// ListRules retrieves all automation rules for a tenant. When automation is
// enabled, default scaffolding is re-provisioned opportunistically so a
// tenant missing defaults converges on next load.
func (p *AutomationProcessor) ListRules(ctx context.Context, accountID uuid.UUID) ([]store.AutomationRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
	)

	settings, err := p.store.GetEmailSettings(ctx, accountID)
	if err == nil && settings.Enabled {
		if provErr := p.EnsureDefaultsProvisioned(ctx, accountID); provErr != nil {
			p.logger.InfoWithError(ctx, "opportunistic default provisioning failed", provErr)
		}
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get email settings", err)
	}

	rules, err := p.store.GetAutomationRulesByAccount(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to list automation rules", err)
		return nil, err
	}

	if rules == nil {
		rules = []store.AutomationRule{}
	}

	return rules, nil
}

// CreateRuleRequest represents a request to create an automation rule
type CreateRuleRequest struct {
	Event        string
	TemplateID   uuid.UUID
	DelaySeconds int
	Enabled      *bool
}

// CreateRule creates an automation rule after verifying that the referenced
// template belongs to the tenant and serves the rule's event.
func (p *AutomationProcessor) CreateRule(ctx context.Context, accountID uuid.UUID, req CreateRuleRequest) (store.AutomationRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "event", Value: req.Event},
		observability.Field{Key: "template_id", Value: req.TemplateID.String()},
	)

	if !store.IsValidAutomationEvent(req.Event) {
		return store.AutomationRule{}, ErrInvalidEvent
	}

	template, err := p.store.GetEmailTemplateByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationRule{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to get email template", err)
		return store.AutomationRule{}, err
	}

	if template.AccountID != accountID {
		return store.AutomationRule{}, ErrTemplateNotFound
	}
	if template.Event != req.Event {
		return store.AutomationRule{}, ErrTemplateEventMismatch
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	delay := req.DelaySeconds
	if delay < 0 {
		delay = 0
	}

	rule, err := p.store.CreateAutomationRule(ctx, store.CreateAutomationRuleParams{
		AccountID:    accountID,
		Event:        req.Event,
		TemplateID:   req.TemplateID,
		DelaySeconds: delay,
		Enabled:      enabled,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create automation rule", err)
		return store.AutomationRule{}, err
	}

	p.logger.Info(ctx, "automation rule created successfully")
	return rule, nil
}

// ToggleRule flips a rule's enabled flag
func (p *AutomationProcessor) ToggleRule(ctx context.Context, accountID, ruleID uuid.UUID) (store.AutomationRule, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "rule_id", Value: ruleID.String()},
	)

	rule, err := p.store.GetAutomationRuleByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationRule{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to get automation rule", err)
		return store.AutomationRule{}, err
	}

	if rule.AccountID != accountID {
		return store.AutomationRule{}, ErrRuleNotFound
	}

	updated, err := p.store.UpdateAutomationRuleEnabled(ctx, ruleID, !rule.Enabled)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationRule{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to toggle automation rule", err)
		return store.AutomationRule{}, err
	}

	p.logger.Info(ctx, "automation rule toggled successfully")
	return updated, nil
}

// EnsureDefaultsProvisioned seeds the default template catalog and an
// enabled rule for every supported event. The routine is idempotent: it
// creates what is missing, re-enables disabled default rules, and never
// duplicates an event that already has a rule.
func (p *AutomationProcessor) EnsureDefaultsProvisioned(ctx context.Context, accountID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
	)

	for _, event := range store.AutomationEvents {
		template, err := p.store.GetEmailTemplateByEvent(ctx, accountID, event)
		if errors.Is(err, store.ErrNotFound) {
			catalog := defaultTemplateCatalog[event]
			template, err = p.store.CreateEmailTemplate(ctx, store.CreateEmailTemplateParams{
				AccountID: accountID,
				Name:      catalog.Name,
				Event:     event,
				Subject:   catalog.Subject,
				Body:      catalog.Body,
				Variables: catalog.Variables,
			})
		}
		if err != nil {
			p.logger.Error(ctx, "failed to provision default template", err)
			return err
		}

		rule, err := p.store.GetAutomationRuleByEvent(ctx, accountID, event)
		if errors.Is(err, store.ErrNotFound) {
			_, err = p.store.CreateAutomationRule(ctx, store.CreateAutomationRuleParams{
				AccountID:    accountID,
				Event:        event,
				TemplateID:   template.ID,
				DelaySeconds: 0,
				Enabled:      true,
			})
			if err != nil {
				p.logger.Error(ctx, "failed to provision default rule", err)
				return err
			}
			continue
		}
		if err != nil {
			p.logger.Error(ctx, "failed to look up automation rule", err)
			return err
		}

		if !rule.Enabled {
			if _, err := p.store.UpdateAutomationRuleEnabled(ctx, rule.ID, true); err != nil {
				p.logger.Error(ctx, "failed to re-enable default rule", err)
				return err
			}
		}
	}

	p.logger.Info(ctx, "default automation scaffolding provisioned")
	return nil
}

// GetSettings retrieves a tenant's automation settings, defaulting to a
// disabled configuration when none have been saved yet.
func (p *AutomationProcessor) GetSettings(ctx context.Context, accountID uuid.UUID) (store.EmailSettings, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
	)

	settings, err := p.store.GetEmailSettings(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailSettings{AccountID: accountID, Enabled: false, ReminderDelayDays: 7}, nil
		}
		p.logger.Error(ctx, "failed to get email settings", err)
		return store.EmailSettings{}, err
	}

	return settings, nil
}

// UpdateSettingsRequest represents a request to update a tenant's settings
type UpdateSettingsRequest struct {
	Enabled           bool
	FromName          string
	ReplyTo           string
	ReminderDelayDays int
}

// UpdateSettings writes a tenant's automation settings. Turning automation
// on provisions the default scaffolding.
func (p *AutomationProcessor) UpdateSettings(ctx context.Context, accountID uuid.UUID, req UpdateSettingsRequest) (store.EmailSettings, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "automation_enabled", Value: req.Enabled},
	)

	settings, err := p.store.UpsertEmailSettings(ctx, store.UpsertEmailSettingsParams{
		AccountID:         accountID,
		Enabled:           req.Enabled,
		FromName:          req.FromName,
		ReplyTo:           req.ReplyTo,
		ReminderDelayDays: req.ReminderDelayDays,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert email settings", err)
		return store.EmailSettings{}, err
	}

	if req.Enabled {
		if err := p.EnsureDefaultsProvisioned(ctx, accountID); err != nil {
			return store.EmailSettings{}, err
		}
	}

	p.logger.Info(ctx, "email settings updated successfully")
	return settings, nil
}

// TriggerEvent is the fire-and-forget entry point invoked by business logic
// when something happened (client created, payment received, ...). It looks
// up the tenant's enabled rules for the event, renders one email per rule and
// enqueues it. Every failure is swallowed here: the calling business action
// must never fail because email dispatch did.
func (p *AutomationProcessor) TriggerEvent(ctx context.Context, accountID uuid.UUID, event string, variables map[string]string, recipientEmail string) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "event", Value: event},
		observability.Field{Key: "recipient", Value: recipientEmail},
	)

	if err := p.triggerEvent(ctx, accountID, event, variables, recipientEmail); err != nil {
		p.logger.InfoWithError(ctx, "event trigger produced no emails", err)
	}
}

func (p *AutomationProcessor) triggerEvent(ctx context.Context, accountID uuid.UUID, event string, variables map[string]string, recipientEmail string) error {
	if !store.IsValidAutomationEvent(event) {
		return ErrInvalidEvent
	}
	if recipientEmail == "" {
		return nil
	}

	settings, err := p.store.GetEmailSettings(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Automation was never configured for this tenant.
			return nil
		}
		return err
	}
	if !settings.Enabled {
		return nil
	}

	rules, err := p.store.GetEnabledAutomationRulesByEvent(ctx, accountID, event)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		return nil
	}

	var replyTo *string
	if settings.ReplyTo != "" {
		replyTo = &settings.ReplyTo
	}

	now := p.now()
	for _, rule := range rules {
		template, err := p.store.GetEmailTemplateByID(ctx, rule.TemplateID)
		if err != nil {
			p.logger.Error(ctx, "failed to resolve rule template", err)
			continue
		}

		subject := render.Substitute(template.Subject, variables)
		body := render.Substitute(template.Body, variables)
		sendAt := now.Add(time.Duration(rule.DelaySeconds) * time.Second)

		_, err = p.store.EnqueueEmail(ctx, store.EnqueueEmailParams{
			AccountID:    accountID,
			Recipient:    recipientEmail,
			Subject:      subject,
			Body:         body,
			ReplyTo:      replyTo,
			FromName:     settings.FromName,
			EmailType:    store.EmailTypeTemplate,
			TemplateName: template.Name,
			Event:        event,
			SendAt:       sendAt,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to enqueue automation email", err)
			continue
		}
	}

	p.logger.Info(ctx, "automation event processed")
	return nil
}
