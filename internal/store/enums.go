package store

// Automation Event ENUMs
const (
	EventClientCreated    = "CLIENT_CREATED"
	EventProjectStarted   = "PROJECT_STARTED"
	EventProjectCompleted = "PROJECT_COMPLETED"
	EventProjectOnHold    = "PROJECT_ON_HOLD"
	EventInvoiceCreated   = "INVOICE_CREATED"
	EventInvoiceOverdue   = "INVOICE_OVERDUE"
	EventPaymentReceived  = "PAYMENT_RECEIVED"
)

// AutomationEvents lists every supported event in catalog order.
var AutomationEvents = []string{
	EventClientCreated,
	EventProjectStarted,
	EventProjectCompleted,
	EventProjectOnHold,
	EventInvoiceCreated,
	EventInvoiceOverdue,
	EventPaymentReceived,
}

// IsValidAutomationEvent reports whether event names a supported event.
func IsValidAutomationEvent(event string) bool {
	for _, e := range AutomationEvents {
		if e == event {
			return true
		}
	}
	return false
}

// Queue Item ENUMs
const (
	QueueItemStatusPending    = "pending"
	QueueItemStatusProcessing = "processing"
	QueueItemStatusSent       = "sent"
	QueueItemStatusFailed     = "failed"
)

const (
	EmailTypeTemplate = "template"
	EmailTypeInvoice  = "invoice"
)

// Email Log ENUMs
const (
	EmailLogStatusSent   = "sent"
	EmailLogStatusFailed = "failed"
)
