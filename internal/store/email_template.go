package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateEmailTemplateParams represents parameters for creating an email template
type CreateEmailTemplateParams struct {
	AccountID uuid.UUID
	Name      string
	Event     string
	Subject   string
	Body      string
	Variables StringList
}

const sqlCreateEmailTemplate = `
INSERT INTO email_templates (account_id, name, event, subject, body, variables)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, account_id, name, event, subject, body, variables, created_at, updated_at
`

// CreateEmailTemplate creates a new email template
func (s *Store) CreateEmailTemplate(ctx context.Context, params CreateEmailTemplateParams) (EmailTemplate, error) {
	var template EmailTemplate
	err := s.db.GetContext(ctx, &template, sqlCreateEmailTemplate,
		params.AccountID,
		params.Name,
		params.Event,
		params.Subject,
		params.Body,
		params.Variables)
	if err != nil {
		return EmailTemplate{}, fmt.Errorf("failed to create email template: %w", err)
	}
	return template, nil
}

const sqlGetEmailTemplateByID = `
SELECT id, account_id, name, event, subject, body, variables, created_at, updated_at
FROM email_templates
WHERE id = $1
`

// GetEmailTemplateByID retrieves an email template by ID
func (s *Store) GetEmailTemplateByID(ctx context.Context, templateID uuid.UUID) (EmailTemplate, error) {
	var template EmailTemplate
	err := s.db.GetContext(ctx, &template, sqlGetEmailTemplateByID, templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailTemplate{}, ErrNotFound
		}
		return EmailTemplate{}, fmt.Errorf("failed to get email template: %w", err)
	}
	return template, nil
}

const sqlGetEmailTemplatesByAccount = `
SELECT id, account_id, name, event, subject, body, variables, created_at, updated_at
FROM email_templates
WHERE account_id = $1
ORDER BY created_at DESC
`

// GetEmailTemplatesByAccount retrieves all email templates for a tenant
func (s *Store) GetEmailTemplatesByAccount(ctx context.Context, accountID uuid.UUID) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	err := s.db.SelectContext(ctx, &templates, sqlGetEmailTemplatesByAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get email templates: %w", err)
	}
	return templates, nil
}

const sqlGetEmailTemplateByEvent = `
SELECT id, account_id, name, event, subject, body, variables, created_at, updated_at
FROM email_templates
WHERE account_id = $1 AND event = $2
ORDER BY created_at DESC
LIMIT 1
`

// GetEmailTemplateByEvent retrieves the newest template for an account/event pair
func (s *Store) GetEmailTemplateByEvent(ctx context.Context, accountID uuid.UUID, event string) (EmailTemplate, error) {
	var template EmailTemplate
	err := s.db.GetContext(ctx, &template, sqlGetEmailTemplateByEvent, accountID, event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailTemplate{}, ErrNotFound
		}
		return EmailTemplate{}, fmt.Errorf("failed to get email template by event: %w", err)
	}
	return template, nil
}

const sqlUpdateEmailTemplate = `
UPDATE email_templates
SET name = COALESCE($2, name),
    subject = COALESCE($3, subject),
    body = COALESCE($4, body),
    variables = COALESCE($5, variables),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, account_id, name, event, subject, body, variables, created_at, updated_at
`

// UpdateEmailTemplateParams represents parameters for updating an email template
type UpdateEmailTemplateParams struct {
	Name      *string
	Subject   *string
	Body      *string
	Variables *StringList
}

// UpdateEmailTemplate updates an email template's mutable content
func (s *Store) UpdateEmailTemplate(ctx context.Context, templateID uuid.UUID, params UpdateEmailTemplateParams) (EmailTemplate, error) {
	var template EmailTemplate
	err := s.db.GetContext(ctx, &template, sqlUpdateEmailTemplate,
		templateID,
		params.Name,
		params.Subject,
		params.Body,
		params.Variables)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailTemplate{}, ErrNotFound
		}
		return EmailTemplate{}, fmt.Errorf("failed to update email template: %w", err)
	}
	return template, nil
}

const sqlDeleteEmailTemplate = `
DELETE FROM email_templates
WHERE id = $1
`

// DeleteEmailTemplate deletes an email template
func (s *Store) DeleteEmailTemplate(ctx context.Context, templateID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteEmailTemplate, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
