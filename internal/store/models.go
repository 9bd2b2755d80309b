package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringList is a JSONB-backed list of strings (template placeholder names).
type StringList []string

// Value implements the driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("incompatible type for StringList")
	}
}

// EmailTemplate is a tenant-scoped message template for one automation event.
type EmailTemplate struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	AccountID uuid.UUID  `db:"account_id" json:"account_id"`
	Name      string     `db:"name" json:"name"`
	Event     string     `db:"event" json:"event"`
	Subject   string     `db:"subject" json:"subject"`
	Body      string     `db:"body" json:"body"`
	Variables StringList `db:"variables" json:"variables"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// AutomationRule maps a business event to a template with an optional delay.
type AutomationRule struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AccountID    uuid.UUID `db:"account_id" json:"account_id"`
	Event        string    `db:"event" json:"event"`
	TemplateID   uuid.UUID `db:"template_id" json:"template_id"`
	DelaySeconds int       `db:"delay_seconds" json:"delay_seconds"`
	Enabled      bool      `db:"enabled" json:"enabled"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// InvoiceLineItem is one billable line on an invoice.
type InvoiceLineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// InvoiceData is the typed invoice payload carried by invoice-type queue
// items. Date fields are real timestamps so the queue round-trip never has
// to guess which strings are dates.
type InvoiceData struct {
	InvoiceNumber string            `json:"invoice_number"`
	ClientName    string            `json:"client_name"`
	ClientEmail   string            `json:"client_email"`
	ClientAddress string            `json:"client_address,omitempty"`
	Items         []InvoiceLineItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	TaxRate       float64           `json:"tax_rate"`
	TaxAmount     float64           `json:"tax_amount"`
	Total         float64           `json:"total"`
	Currency      string            `json:"currency"`
	IssuedAt      time.Time         `json:"issued_at"`
	DueAt         time.Time         `json:"due_at"`
	Notes         string            `json:"notes,omitempty"`
}

// Value implements the driver.Valuer interface for InvoiceData
func (d InvoiceData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface for InvoiceData
func (d *InvoiceData) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("incompatible type for InvoiceData")
	}
}

// BusinessProfile is the sending tenant's letterhead data for invoice PDFs.
type BusinessProfile struct {
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Website      string `json:"website,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

// Value implements the driver.Valuer interface for BusinessProfile
func (p BusinessProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for BusinessProfile
func (p *BusinessProfile) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("incompatible type for BusinessProfile")
	}
}

// QueueItem is one durable unit of email work. Content is denormalized at
// enqueue time so later template edits never affect queued sends.
type QueueItem struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	AccountID      uuid.UUID        `db:"account_id" json:"account_id"`
	Recipient      string           `db:"recipient" json:"recipient"`
	Subject        string           `db:"subject" json:"subject"`
	Body           string           `db:"body" json:"body"`
	ReplyTo        *string          `db:"reply_to" json:"reply_to,omitempty"`
	FromName       string           `db:"from_name" json:"from_name"`
	Status         string           `db:"status" json:"status"`
	EmailType      string           `db:"email_type" json:"email_type"`
	TemplateName   string           `db:"template_name" json:"template_name"`
	Event          string           `db:"event" json:"event"`
	SendAt         time.Time        `db:"send_at" json:"send_at"`
	SentAt         *time.Time       `db:"sent_at" json:"sent_at,omitempty"`
	RetryCount     int              `db:"retry_count" json:"retry_count"`
	Error          *string          `db:"error" json:"error,omitempty"`
	MessageID      *string          `db:"message_id" json:"message_id,omitempty"`
	ClaimedBy      *string          `db:"claimed_by" json:"claimed_by,omitempty"`
	LeaseExpiresAt *time.Time       `db:"lease_expires_at" json:"lease_expires_at,omitempty"`
	InvoiceData    *InvoiceData     `db:"invoice_data" json:"invoice_data,omitempty"`
	Profile        *BusinessProfile `db:"business_profile" json:"business_profile,omitempty"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
}

// EmailLog is one append-only delivery audit record.
type EmailLog struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AccountID    uuid.UUID `db:"account_id" json:"account_id"`
	Recipient    string    `db:"recipient" json:"recipient"`
	Subject      string    `db:"subject" json:"subject"`
	TemplateName string    `db:"template_name" json:"template_name"`
	Event        string    `db:"event" json:"event"`
	Status       string    `db:"status" json:"status"`
	Error        *string   `db:"error" json:"error,omitempty"`
	SentAt       time.Time `db:"sent_at" json:"sent_at"`
}

// EmailSettings is the per-tenant automation singleton.
type EmailSettings struct {
	AccountID         uuid.UUID `db:"account_id" json:"account_id"`
	Enabled           bool      `db:"enabled" json:"enabled"`
	FromName          string    `db:"from_name" json:"from_name"`
	ReplyTo           string    `db:"reply_to" json:"reply_to"`
	ReminderDelayDays int       `db:"reminder_delay_days" json:"reminder_delay_days"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}
