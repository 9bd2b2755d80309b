package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateAutomationRuleParams represents parameters for creating an automation rule
type CreateAutomationRuleParams struct {
	AccountID    uuid.UUID
	Event        string
	TemplateID   uuid.UUID
	DelaySeconds int
	Enabled      bool
}

const sqlCreateAutomationRule = `
INSERT INTO automation_rules (account_id, event, template_id, delay_seconds, enabled)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, account_id, event, template_id, delay_seconds, enabled, created_at
`

// CreateAutomationRule creates a new automation rule
func (s *Store) CreateAutomationRule(ctx context.Context, params CreateAutomationRuleParams) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlCreateAutomationRule,
		params.AccountID,
		params.Event,
		params.TemplateID,
		params.DelaySeconds,
		params.Enabled)
	if err != nil {
		return AutomationRule{}, fmt.Errorf("failed to create automation rule: %w", err)
	}
	return rule, nil
}

const sqlGetAutomationRuleByID = `
SELECT id, account_id, event, template_id, delay_seconds, enabled, created_at
FROM automation_rules
WHERE id = $1
`

// GetAutomationRuleByID retrieves an automation rule by ID
func (s *Store) GetAutomationRuleByID(ctx context.Context, ruleID uuid.UUID) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlGetAutomationRuleByID, ruleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		return AutomationRule{}, fmt.Errorf("failed to get automation rule: %w", err)
	}
	return rule, nil
}

const sqlGetAutomationRulesByAccount = `
SELECT id, account_id, event, template_id, delay_seconds, enabled, created_at
FROM automation_rules
WHERE account_id = $1
ORDER BY created_at DESC
`

// GetAutomationRulesByAccount retrieves all automation rules for a tenant
func (s *Store) GetAutomationRulesByAccount(ctx context.Context, accountID uuid.UUID) ([]AutomationRule, error) {
	var rules []AutomationRule
	err := s.db.SelectContext(ctx, &rules, sqlGetAutomationRulesByAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get automation rules: %w", err)
	}
	return rules, nil
}

const sqlGetEnabledAutomationRulesByEvent = `
SELECT id, account_id, event, template_id, delay_seconds, enabled, created_at
FROM automation_rules
WHERE account_id = $1 AND event = $2 AND enabled = TRUE
ORDER BY created_at ASC
`

// GetEnabledAutomationRulesByEvent retrieves every enabled rule for an
// account/event pair. Each returned rule produces one queued email.
func (s *Store) GetEnabledAutomationRulesByEvent(ctx context.Context, accountID uuid.UUID, event string) ([]AutomationRule, error) {
	var rules []AutomationRule
	err := s.db.SelectContext(ctx, &rules, sqlGetEnabledAutomationRulesByEvent, accountID, event)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled automation rules: %w", err)
	}
	return rules, nil
}

const sqlGetAutomationRuleByEvent = `
SELECT id, account_id, event, template_id, delay_seconds, enabled, created_at
FROM automation_rules
WHERE account_id = $1 AND event = $2
ORDER BY created_at ASC
LIMIT 1
`

// GetAutomationRuleByEvent retrieves the oldest rule for an account/event
// pair regardless of its enabled flag. Used by default provisioning.
func (s *Store) GetAutomationRuleByEvent(ctx context.Context, accountID uuid.UUID, event string) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlGetAutomationRuleByEvent, accountID, event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		return AutomationRule{}, fmt.Errorf("failed to get automation rule by event: %w", err)
	}
	return rule, nil
}

const sqlUpdateAutomationRuleEnabled = `
UPDATE automation_rules
SET enabled = $2
WHERE id = $1
RETURNING id, account_id, event, template_id, delay_seconds, enabled, created_at
`

// UpdateAutomationRuleEnabled sets a rule's enabled flag
func (s *Store) UpdateAutomationRuleEnabled(ctx context.Context, ruleID uuid.UUID, enabled bool) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlUpdateAutomationRuleEnabled, ruleID, enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		return AutomationRule{}, fmt.Errorf("failed to update automation rule: %w", err)
	}
	return rule, nil
}
