package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const queueColumns = `id, account_id, recipient, subject, body, reply_to, from_name, status, email_type,
template_name, event, send_at, sent_at, retry_count, error, message_id, claimed_by, lease_expires_at,
invoice_data, business_profile, created_at`

// EnqueueEmailParams represents parameters for appending a queue item
type EnqueueEmailParams struct {
	AccountID    uuid.UUID
	Recipient    string
	Subject      string
	Body         string
	ReplyTo      *string
	FromName     string
	EmailType    string
	TemplateName string
	Event        string
	SendAt       time.Time
	InvoiceData  *InvoiceData
	Profile      *BusinessProfile
}

const sqlEnqueueEmail = `
INSERT INTO email_queue (account_id, recipient, subject, body, reply_to, from_name, status, email_type,
	template_name, event, send_at, invoice_data, business_profile)
VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $8, $9, $10, $11, $12)
RETURNING ` + queueColumns

// EnqueueEmail appends a pending queue item
func (s *Store) EnqueueEmail(ctx context.Context, params EnqueueEmailParams) (QueueItem, error) {
	var item QueueItem
	err := s.db.GetContext(ctx, &item, sqlEnqueueEmail,
		params.AccountID,
		params.Recipient,
		params.Subject,
		params.Body,
		params.ReplyTo,
		params.FromName,
		params.EmailType,
		params.TemplateName,
		params.Event,
		params.SendAt,
		params.InvoiceData,
		params.Profile)
	if err != nil {
		return QueueItem{}, fmt.Errorf("failed to enqueue email: %w", err)
	}
	return item, nil
}

const sqlClaimDueQueueItems = `
UPDATE email_queue
SET status = 'processing', claimed_by = $1, lease_expires_at = $2
WHERE id IN (
	SELECT id FROM email_queue
	WHERE status = 'pending' AND send_at <= $3
	ORDER BY send_at ASC
	LIMIT $4
	FOR UPDATE SKIP LOCKED
)
RETURNING ` + queueColumns

// ClaimDueQueueItems atomically claims up to limit due pending items for one
// worker invocation. Rows already claimed by a concurrent invocation are
// skipped, so an item is processed by at most one live worker at a time.
func (s *Store) ClaimDueQueueItems(ctx context.Context, workerID string, leaseUntil, now time.Time, limit int) ([]QueueItem, error) {
	var items []QueueItem
	err := s.db.SelectContext(ctx, &items, sqlClaimDueQueueItems, workerID, leaseUntil, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due queue items: %w", err)
	}
	return items, nil
}

const sqlReclaimExpiredLeases = `
UPDATE email_queue
SET status = 'pending', claimed_by = NULL, lease_expires_at = NULL
WHERE status = 'processing' AND lease_expires_at < $1
`

// ReclaimExpiredLeases returns items whose worker died mid-batch to the
// pending pool. Returns the number of reclaimed items.
func (s *Store) ReclaimExpiredLeases(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlReclaimExpiredLeases, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim expired leases: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlMarkQueueItemSent = `
UPDATE email_queue
SET status = 'sent', sent_at = $2, message_id = $3, error = NULL, claimed_by = NULL, lease_expires_at = NULL
WHERE id = $1 AND status = 'processing'
`

// MarkQueueItemSent transitions a claimed item to its terminal sent state
func (s *Store) MarkQueueItemSent(ctx context.Context, itemID uuid.UUID, sentAt time.Time, messageID string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkQueueItemSent, itemID, sentAt, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark queue item sent: %w", err)
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

const sqlMarkQueueItemRetry = `
UPDATE email_queue
SET status = 'pending', retry_count = $2, send_at = $3, error = $4, claimed_by = NULL, lease_expires_at = NULL
WHERE id = $1 AND status = 'processing'
`

// MarkQueueItemRetry returns a claimed item to pending with a later send time
func (s *Store) MarkQueueItemRetry(ctx context.Context, itemID uuid.UUID, retryCount int, nextSendAt time.Time, errMsg string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkQueueItemRetry, itemID, retryCount, nextSendAt, errMsg)
	if err != nil {
		return fmt.Errorf("failed to mark queue item for retry: %w", err)
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

const sqlMarkQueueItemFailed = `
UPDATE email_queue
SET status = 'failed', retry_count = $2, error = $3, claimed_by = NULL, lease_expires_at = NULL
WHERE id = $1 AND status = 'processing'
`

// MarkQueueItemFailed transitions a claimed item to its terminal failed state
func (s *Store) MarkQueueItemFailed(ctx context.Context, itemID uuid.UUID, retryCount int, errMsg string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkQueueItemFailed, itemID, retryCount, errMsg)
	if err != nil {
		return fmt.Errorf("failed to mark queue item failed: %w", err)
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

const sqlGetQueueItemByID = `
SELECT ` + queueColumns + `
FROM email_queue
WHERE id = $1
`

// GetQueueItemByID retrieves a queue item by ID
func (s *Store) GetQueueItemByID(ctx context.Context, itemID uuid.UUID) (QueueItem, error) {
	var item QueueItem
	err := s.db.GetContext(ctx, &item, sqlGetQueueItemByID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QueueItem{}, ErrNotFound
		}
		return QueueItem{}, fmt.Errorf("failed to get queue item: %w", err)
	}
	return item, nil
}

const sqlGetQueueItemsByAccount = `
SELECT ` + queueColumns + `
FROM email_queue
WHERE account_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetQueueItemsByAccount retrieves a tenant's queue items with pagination
func (s *Store) GetQueueItemsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]QueueItem, error) {
	var items []QueueItem
	err := s.db.SelectContext(ctx, &items, sqlGetQueueItemsByAccount, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue items: %w", err)
	}
	return items, nil
}

const sqlDeleteQueueItem = `
DELETE FROM email_queue
WHERE id = $1 AND account_id = $2 AND status = 'pending'
`

// DeleteQueueItem removes a pending item. Items in any other state are left
// untouched and reported as not found.
func (s *Store) DeleteQueueItem(ctx context.Context, accountID, itemID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteQueueItem, itemID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete queue item: %w", err)
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
