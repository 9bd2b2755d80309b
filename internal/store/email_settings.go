package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetEmailSettings = `
SELECT account_id, enabled, from_name, reply_to, reminder_delay_days, created_at, updated_at
FROM email_settings
WHERE account_id = $1
`

// GetEmailSettings retrieves a tenant's automation settings singleton
func (s *Store) GetEmailSettings(ctx context.Context, accountID uuid.UUID) (EmailSettings, error) {
	var settings EmailSettings
	err := s.db.GetContext(ctx, &settings, sqlGetEmailSettings, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailSettings{}, ErrNotFound
		}
		return EmailSettings{}, fmt.Errorf("failed to get email settings: %w", err)
	}
	return settings, nil
}

// UpsertEmailSettingsParams represents parameters for writing a tenant's settings
type UpsertEmailSettingsParams struct {
	AccountID         uuid.UUID
	Enabled           bool
	FromName          string
	ReplyTo           string
	ReminderDelayDays int
}

const sqlUpsertEmailSettings = `
INSERT INTO email_settings (account_id, enabled, from_name, reply_to, reminder_delay_days)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (account_id) DO UPDATE
SET enabled = EXCLUDED.enabled,
    from_name = EXCLUDED.from_name,
    reply_to = EXCLUDED.reply_to,
    reminder_delay_days = EXCLUDED.reminder_delay_days,
    updated_at = CURRENT_TIMESTAMP
RETURNING account_id, enabled, from_name, reply_to, reminder_delay_days, created_at, updated_at
`

// UpsertEmailSettings creates or replaces a tenant's automation settings
func (s *Store) UpsertEmailSettings(ctx context.Context, params UpsertEmailSettingsParams) (EmailSettings, error) {
	var settings EmailSettings
	err := s.db.GetContext(ctx, &settings, sqlUpsertEmailSettings,
		params.AccountID,
		params.Enabled,
		params.FromName,
		params.ReplyTo,
		params.ReminderDelayDays)
	if err != nil {
		return EmailSettings{}, fmt.Errorf("failed to upsert email settings: %w", err)
	}
	return settings, nil
}
