package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"agencydesk-server/internal/clients/mail"
	"agencydesk-server/internal/observability"
	"agencydesk-server/internal/store"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxAttempts bounds delivery to one initial try plus two retries.
	MaxAttempts = 3

	defaultBatchSize = 50
)

// QueueStore defines the database operations required by the delivery worker
type QueueStore interface {
	ReclaimExpiredLeases(ctx context.Context, now time.Time) (int64, error)
	ClaimDueQueueItems(ctx context.Context, workerID string, leaseUntil, now time.Time, limit int) ([]store.QueueItem, error)
	MarkQueueItemSent(ctx context.Context, itemID uuid.UUID, sentAt time.Time, messageID string) error
	MarkQueueItemRetry(ctx context.Context, itemID uuid.UUID, retryCount int, nextSendAt time.Time, errMsg string) error
	MarkQueueItemFailed(ctx context.Context, itemID uuid.UUID, retryCount int, errMsg string) error
	CreateEmailLog(ctx context.Context, params store.CreateEmailLogParams) (store.EmailLog, error)
	EnqueueEmail(ctx context.Context, params store.EnqueueEmailParams) (store.QueueItem, error)
	GetQueueItemsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]store.QueueItem, error)
	DeleteQueueItem(ctx context.Context, accountID, itemID uuid.UUID) error
	GetEmailLogsByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]store.EmailLog, error)
	GetEmailSettings(ctx context.Context, accountID uuid.UUID) (store.EmailSettings, error)
}

// MailSender sends one email through the delivery provider
type MailSender interface {
	SendEmail(ctx context.Context, req mail.SendRequest) (string, error)
	SendEmailWithAttachment(ctx context.Context, req mail.SendRequest, attachment []byte, fileName string) (string, error)
}

// PDFGenerator renders an invoice payload into attachment bytes
type PDFGenerator interface {
	Generate(ctx context.Context, invoice store.InvoiceData, profile store.BusinessProfile) ([]byte, string)
}

// BatchResult summarizes one worker invocation
type BatchResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Retried   int `json:"retried"`
}

type QueueProcessor struct {
	store         QueueStore
	mailClient    MailSender
	pdfGenerator  PDFGenerator
	logger        *observability.Logger
	workerID      string
	batchSize     int
	leaseDuration time.Duration
	now           func() time.Time
}

func New(queueStore QueueStore, mailClient MailSender, pdfGenerator PDFGenerator, leaseDuration time.Duration, batchSize int, logger *observability.Logger) QueueProcessor {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return QueueProcessor{
		store:         queueStore,
		mailClient:    mailClient,
		pdfGenerator:  pdfGenerator,
		logger:        logger,
		workerID:      fmt.Sprintf("worker-%s", uuid.New().String()),
		batchSize:     batchSize,
		leaseDuration: leaseDuration,
		now:           time.Now,
	}
}

// ProcessQueue runs one delivery batch: expired leases are returned to the
// pending pool, due items are claimed under a fresh lease, and each claimed
// item is delivered independently. One item's failure never aborts the batch.
func (p *QueueProcessor) ProcessQueue(ctx context.Context) (BatchResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: p.workerID},
	)

	now := p.now()

	reclaimed, err := p.store.ReclaimExpiredLeases(ctx, now)
	if err != nil {
		p.logger.Error(ctx, "failed to reclaim expired leases", err)
		return BatchResult{}, err
	}
	if reclaimed > 0 {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "reclaimed", Value: reclaimed},
		), "reclaimed expired queue leases")
	}

	items, err := p.store.ClaimDueQueueItems(ctx, p.workerID, now.Add(p.leaseDuration), now, p.batchSize)
	if err != nil {
		p.logger.Error(ctx, "failed to claim due queue items", err)
		return BatchResult{}, err
	}

	result := BatchResult{Processed: len(items)}
	for _, item := range items {
		switch p.processItem(ctx, item) {
		case outcomeSent:
			result.Sent++
		case outcomeRetried:
			result.Retried++
		case outcomeFailed:
			result.Failed++
		}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "processed", Value: result.Processed},
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "failed", Value: result.Failed},
		observability.Field{Key: "retried", Value: result.Retried},
	), "delivery batch finished")

	return result, nil
}

type itemOutcome int

const (
	outcomeSent itemOutcome = iota
	outcomeRetried
	outcomeFailed
)

func (p *QueueProcessor) processItem(ctx context.Context, item store.QueueItem) (outcome itemOutcome) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "queue_item_id", Value: item.ID.String()},
		observability.Field{Key: "account_id", Value: item.AccountID.String()},
		observability.Field{Key: "email_type", Value: item.EmailType},
		observability.Field{Key: "retry_count", Value: item.RetryCount},
	)

	// A panic while handling one item must not take down the batch.
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while processing queue item: %v", r)
			p.logger.Error(ctx, "recovered from panic in delivery", err)
			outcome = p.recordFailure(ctx, item, err)
		}
	}()

	sendErr := p.deliver(ctx, item)
	if sendErr != nil {
		return p.recordFailure(ctx, item, sendErr)
	}
	return outcomeSent
}

func (p *QueueProcessor) deliver(ctx context.Context, item store.QueueItem) error {
	req := mail.SendRequest{
		To:       item.Recipient,
		Subject:  item.Subject,
		HTMLBody: item.Body,
		FromName: item.FromName,
	}
	if item.ReplyTo != nil {
		req.ReplyTo = *item.ReplyTo
	}

	var (
		messageID string
		err       error
	)
	if item.EmailType == store.EmailTypeInvoice && item.InvoiceData != nil {
		profile := store.BusinessProfile{}
		if item.Profile != nil {
			profile = *item.Profile
		}
		attachment, fileName := p.pdfGenerator.Generate(ctx, *item.InvoiceData, profile)
		messageID, err = p.mailClient.SendEmailWithAttachment(ctx, req, attachment, fileName)
	} else {
		messageID, err = p.mailClient.SendEmail(ctx, req)
	}
	if err != nil {
		return err
	}

	sentAt := p.now()
	if err := p.store.MarkQueueItemSent(ctx, item.ID, sentAt, messageID); err != nil {
		// The email already went out. Do not report a delivery error here,
		// that would schedule a duplicate send.
		p.logger.Error(ctx, "failed to mark queue item sent", err)
		return nil
	}

	if _, err := p.store.CreateEmailLog(ctx, store.CreateEmailLogParams{
		AccountID:    item.AccountID,
		Recipient:    item.Recipient,
		Subject:      item.Subject,
		TemplateName: item.TemplateName,
		Event:        item.Event,
		Status:       store.EmailLogStatusSent,
		SentAt:       sentAt,
	}); err != nil {
		p.logger.Error(ctx, "failed to write sent log entry", err)
	}

	return nil
}

// recordFailure applies the retry policy after a delivery error. Attempts
// below the cap go back to pending with an escalating delay; the final
// attempt moves the item to its terminal failed state and writes the single
// failure log entry.
func (p *QueueProcessor) recordFailure(ctx context.Context, item store.QueueItem, sendErr error) itemOutcome {
	retryCount := item.RetryCount + 1
	errMsg := sendErr.Error()

	if retryCount < MaxAttempts {
		nextSendAt := p.now().Add(retryDelay(retryCount))
		if err := p.store.MarkQueueItemRetry(ctx, item.ID, retryCount, nextSendAt, errMsg); err != nil {
			p.logger.Error(ctx, "failed to schedule retry", err)
			return outcomeFailed
		}
		p.logger.InfoWithError(observability.WithFields(ctx,
			observability.Field{Key: "next_send_at", Value: nextSendAt},
		), "delivery failed, retry scheduled", sendErr)
		return outcomeRetried
	}

	if err := p.store.MarkQueueItemFailed(ctx, item.ID, retryCount, errMsg); err != nil {
		p.logger.Error(ctx, "failed to mark queue item failed", err)
		return outcomeFailed
	}

	if _, err := p.store.CreateEmailLog(ctx, store.CreateEmailLogParams{
		AccountID:    item.AccountID,
		Recipient:    item.Recipient,
		Subject:      item.Subject,
		TemplateName: item.TemplateName,
		Event:        item.Event,
		Status:       store.EmailLogStatusFailed,
		Error:        &errMsg,
		SentAt:       p.now(),
	}); err != nil {
		p.logger.Error(ctx, "failed to write failure log entry", err)
	}

	p.logger.Error(ctx, "delivery failed permanently", sendErr)
	return outcomeFailed
}

// retryDelay returns the wait before the given attempt number is retried:
// 15 minutes after the first failure, then 45, then 135.
func retryDelay(retryCount int) time.Duration {
	delay := 5
	for i := 0; i < retryCount; i++ {
		delay *= 3
	}
	return time.Duration(delay) * time.Minute
}

// SendInvoiceRequest carries one invoice email to enqueue
type SendInvoiceRequest struct {
	Recipient string
	Subject   string
	Body      string
	Invoice   store.InvoiceData
	Profile   store.BusinessProfile
}

// EnqueueInvoice appends an invoice-type queue item for immediate delivery.
// The sender identity comes from the tenant's settings when present.
func (p *QueueProcessor) EnqueueInvoice(ctx context.Context, accountID uuid.UUID, req SendInvoiceRequest) (store.QueueItem, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "invoice_number", Value: req.Invoice.InvoiceNumber},
	)

	params := store.EnqueueEmailParams{
		AccountID:    accountID,
		Recipient:    req.Recipient,
		Subject:      req.Subject,
		Body:         req.Body,
		EmailType:    store.EmailTypeInvoice,
		TemplateName: "invoice",
		Event:        store.EventInvoiceCreated,
		SendAt:       p.now(),
		InvoiceData:  &req.Invoice,
		Profile:      &req.Profile,
	}

	settings, err := p.store.GetEmailSettings(ctx, accountID)
	if err == nil {
		params.FromName = settings.FromName
		if settings.ReplyTo != "" {
			replyTo := settings.ReplyTo
			params.ReplyTo = &replyTo
		}
	}

	item, err := p.store.EnqueueEmail(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to enqueue invoice email", err)
		return store.QueueItem{}, err
	}

	p.logger.Info(ctx, "invoice email enqueued")
	return item, nil
}

// ListQueue retrieves a tenant's queue items
func (p *QueueProcessor) ListQueue(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]store.QueueItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := p.store.GetQueueItemsByAccount(ctx, accountID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list queue items", err)
		return nil, err
	}
	if items == nil {
		items = []store.QueueItem{}
	}
	return items, nil
}

// CancelQueueItem deletes a tenant's pending queue item. Items already
// claimed, sent or failed cannot be cancelled.
func (p *QueueProcessor) CancelQueueItem(ctx context.Context, accountID, itemID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: accountID.String()},
		observability.Field{Key: "queue_item_id", Value: itemID.String()},
	)

	if err := p.store.DeleteQueueItem(ctx, accountID, itemID); err != nil {
		if err != store.ErrNotFound {
			p.logger.Error(ctx, "failed to cancel queue item", err)
		}
		return err
	}

	p.logger.Info(ctx, "queue item cancelled")
	return nil
}

// ListLogs retrieves a tenant's delivery log
func (p *QueueProcessor) ListLogs(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]store.EmailLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := p.store.GetEmailLogsByAccount(ctx, accountID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list email logs", err)
		return nil, err
	}
	if logs == nil {
		logs = []store.EmailLog{}
	}
	return logs, nil
}
