package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateEmailLogParams represents parameters for appending a delivery log entry
type CreateEmailLogParams struct {
	AccountID    uuid.UUID
	Recipient    string
	Subject      string
	TemplateName string
	Event        string
	Status       string
	Error        *string
	SentAt       time.Time
}

const sqlCreateEmailLog = `
INSERT INTO email_logs (account_id, recipient, subject, template_name, event, status, error, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, account_id, recipient, subject, template_name, event, status, error, sent_at
`

// CreateEmailLog appends a delivery log entry. Log rows are never updated or
// deleted afterwards.
func (s *Store) CreateEmailLog(ctx context.Context, params CreateEmailLogParams) (EmailLog, error) {
	var log EmailLog
	err := s.db.GetContext(ctx, &log, sqlCreateEmailLog,
		params.AccountID,
		params.Recipient,
		params.Subject,
		params.TemplateName,
		params.Event,
		params.Status,
		params.Error,
		params.SentAt)
	if err != nil {
		return EmailLog{}, fmt.Errorf("failed to create email log: %w", err)
	}
	return log, nil
}

const sqlGetEmailLogsByAccount = `
SELECT id, account_id, recipient, subject, template_name, event, status, error, sent_at
FROM email_logs
WHERE account_id = $1
ORDER BY sent_at DESC
LIMIT $2 OFFSET $3
`

// GetEmailLogsByAccount retrieves a tenant's delivery log with pagination
func (s *Store) GetEmailLogsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]EmailLog, error) {
	var logs []EmailLog
	err := s.db.SelectContext(ctx, &logs, sqlGetEmailLogsByAccount, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get email logs: %w", err)
	}
	return logs, nil
}
