package handler

import (
	"agencydesk-server/internal/emailqueue/processor"
	"agencydesk-server/internal/observability"
	"agencydesk-server/internal/store"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor     processor.QueueProcessor
	processSecret string
	resendKeySet  bool
	fromAddress   string
	logger        *observability.Logger
}

func New(processor processor.QueueProcessor, processSecret string, resendKeySet bool, fromAddress string, logger *observability.Logger) Handler {
	return Handler{
		processor:     processor,
		processSecret: processSecret,
		resendKeySet:  resendKeySet,
		fromAddress:   fromAddress,
		logger:        logger,
	}
}

// HandleProcessQueue handles GET and POST /api/email/process-queue. The
// endpoint is invoked by an external scheduler; when a process secret is
// configured the caller must present it as a bearer token.
func (h *Handler) HandleProcessQueue(c *gin.Context) {
	ctx := c.Request.Context()

	if h.processSecret != "" {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.processSecret)) != 1 {
			h.logger.Warn(ctx, "process-queue called with bad credentials")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
			return
		}
	}

	result, err := h.processor.ProcessQueue(ctx)
	if err != nil {
		h.logger.Error(ctx, "queue processing failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "queue processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": result.Processed,
		"results": gin.H{
			"sent":    result.Sent,
			"failed":  result.Failed,
			"retried": result.Retried,
		},
		"message": "queue processed",
	})
}

// HandleCheckConfig handles GET /api/email/check-config. It reports whether
// the delivery pipeline is configured without revealing any secret values.
func (h *Handler) HandleCheckConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"resend_api_key_configured": h.resendKeySet,
		"from_address_configured":   h.fromAddress != "",
		"process_secret_configured": h.processSecret != "",
	})
}

// SendInvoiceRequest represents the HTTP request for sending an invoice email
type SendInvoiceRequest struct {
	Recipient string                `json:"recipient" binding:"required,email"`
	Subject   string                `json:"subject" binding:"required,max=255"`
	Body      string                `json:"body" binding:"required"`
	Invoice   store.InvoiceData     `json:"invoice" binding:"required"`
	Profile   store.BusinessProfile `json:"business_profile"`
}

// HandleSendInvoice handles POST /api/v1/invoices/send
func (h *Handler) HandleSendInvoice(c *gin.Context) {
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

	var req SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Invoice.InvoiceNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoice number is required"})
		return
	}
	if req.Invoice.IssuedAt.IsZero() || req.Invoice.DueAt.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoice dates are required"})
		return
	}

	item, err := h.processor.EnqueueInvoice(ctx, accountID, processor.SendInvoiceRequest{
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Body:      req.Body,
		Invoice:   req.Invoice,
		Profile:   req.Profile,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to enqueue invoice email", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue invoice email"})
		return
	}

	c.JSON(http.StatusAccepted, item)
}

// HandleListQueue handles GET /api/v1/email/queue
func (h *Handler) HandleListQueue(c *gin.Context) {
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

	limit, offset := paginationParams(c)

	items, err := h.processor.ListQueue(ctx, accountID, limit, offset)
	if err != nil {
		h.logger.Error(ctx, "failed to list queue items", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list queue items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// HandleCancelQueueItem handles DELETE /api/v1/email/queue/:item_id
func (h *Handler) HandleCancelQueueItem(c *gin.Context) {
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

	// Get item ID from path
	itemIDStr := c.Param("item_id")
	itemID, err := uuid.Parse(itemIDStr)
	if err != nil {
		h.logger.Error(ctx, "failed to parse item ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	err = h.processor.CancelQueueItem(ctx, accountID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pending queue item not found"})
			return
		}
		h.logger.Error(ctx, "failed to cancel queue item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel queue item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListLogs handles GET /api/v1/email/logs
func (h *Handler) HandleListLogs(c *gin.Context) {
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

	limit, offset := paginationParams(c)

	logs, err := h.processor.ListLogs(ctx, accountID, limit, offset)
	if err != nil {
		h.logger.Error(ctx, "failed to list email logs", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list email logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
