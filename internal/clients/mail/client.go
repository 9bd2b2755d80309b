package mail

import (
	"agencydesk-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"
)

var (
	ErrMissingRecipient = errors.New("missing recipient address")
	ErrMissingSubject   = errors.New("missing subject")
	ErrMissingBody      = errors.New("missing email body")
	ErrEmptyMessageID   = errors.New("provider returned empty message id")
)

// SendRequest carries one outbound email. The sender address is always the
// fixed platform address; FromName is the tenant's visible display name and
// ReplyTo routes replies back to the tenant.
type SendRequest struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
	FromName string
	ReplyTo  string
}

type ResendClient struct {
	client      *resend.Client
	fromAddress string
	logger      *observability.Logger
}

func NewResendClient(apiKey, fromAddress string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client:      client,
		fromAddress: fromAddress,
		logger:      logger,
	}, nil
}

// SendEmail sends a plain HTML email and returns the provider message id.
func (c *ResendClient) SendEmail(ctx context.Context, req SendRequest) (string, error) {
	return c.send(ctx, req, nil, "")
}

// SendEmailWithAttachment sends an HTML email carrying one PDF (or degraded
// HTML) attachment and returns the provider message id.
func (c *ResendClient) SendEmailWithAttachment(ctx context.Context, req SendRequest, attachment []byte, fileName string) (string, error) {
	return c.send(ctx, req, attachment, fileName)
}

func (c *ResendClient) send(ctx context.Context, req SendRequest, attachment []byte, fileName string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: req.To},
		observability.Field{Key: "email_subject", Value: req.Subject},
	)

	if req.To == "" {
		return "", ErrMissingRecipient
	}
	if req.Subject == "" {
		return "", ErrMissingSubject
	}
	if req.HTMLBody == "" {
		return "", ErrMissingBody
	}

	textBody := req.TextBody
	if textBody == "" {
		textBody = htmlToText(req.HTMLBody)
	}

	params := &resend.SendEmailRequest{
		From:    c.formatFrom(req.FromName),
		To:      []string{req.To},
		Subject: req.Subject,
		Html:    req.HTMLBody,
		Text:    textBody,
	}
	if req.ReplyTo != "" {
		params.ReplyTo = req.ReplyTo
	}
	if len(attachment) > 0 {
		params.Attachments = []*resend.Attachment{{
			Filename:    fileName,
			Content:     attachment,
			ContentType: attachmentContentType(fileName),
		}}
	}

	res, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	if res.Id == "" {
		c.logger.Error(ctx, "email send not acknowledged", ErrEmptyMessageID)
		return "", ErrEmptyMessageID
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}

// formatFrom substitutes the tenant's display name onto the fixed platform
// sender address.
func (c *ResendClient) formatFrom(fromName string) string {
	if fromName == "" {
		return c.fromAddress
	}
	return fmt.Sprintf("%s <%s>", fromName, c.fromAddress)
}

func attachmentContentType(fileName string) string {
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return "application/pdf"
	}
	return "text/html"
}

// entity replacements applied after tag stripping.
var textEntityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// htmlToText derives a plain-text alternative from an HTML body by stripping
// tags and unescaping a small fixed set of entities.
func htmlToText(html string) string {
	var b strings.Builder
	b.Grow(len(html))

	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	text := textEntityReplacer.Replace(b.String())
	return strings.TrimSpace(text)
}
