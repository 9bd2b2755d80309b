package mail

import (
	"agencydesk-server/internal/observability"
	"context"
	"errors"
	"testing"
)

func TestSendEmailValidation(t *testing.T) {
	logger := observability.NewLogger()
	client, err := NewResendClient("re_test_key", "mail@agencydesk.io", logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	tests := []struct {
		name    string
		req     SendRequest
		wantErr error
	}{
		{
			name:    "missing recipient",
			req:     SendRequest{Subject: "s", HTMLBody: "<p>b</p>"},
			wantErr: ErrMissingRecipient,
		},
		{
			name:    "missing subject",
			req:     SendRequest{To: "ada@example.com", HTMLBody: "<p>b</p>"},
			wantErr: ErrMissingSubject,
		},
		{
			name:    "missing body",
			req:     SendRequest{To: "ada@example.com", Subject: "s"},
			wantErr: ErrMissingBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.SendEmail(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SendEmail() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatFrom(t *testing.T) {
	client := &ResendClient{fromAddress: "mail@agencydesk.io"}

	if got := client.formatFrom("Studio North"); got != "Studio North <mail@agencydesk.io>" {
		t.Errorf("formatFrom() = %q", got)
	}
	if got := client.formatFrom(""); got != "mail@agencydesk.io" {
		t.Errorf("formatFrom() = %q", got)
	}
}

func TestAttachmentContentType(t *testing.T) {
	if got := attachmentContentType("invoice-INV-1.pdf"); got != "application/pdf" {
		t.Errorf("attachmentContentType(pdf) = %q", got)
	}
	if got := attachmentContentType("invoice-INV-1.html"); got != "text/html" {
		t.Errorf("attachmentContentType(html) = %q", got)
	}
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips tags",
			html: "<p>Hi <strong>Ada</strong></p>",
			want: "Hi Ada",
		},
		{
			name: "unescapes entities",
			html: "Fish &amp; chips&nbsp;&lt;today&gt;",
			want: "Fish & chips <today>",
		},
		{
			name: "trims surrounding whitespace",
			html: "<html><body>\n<p>Hello</p>\n</body></html>",
			want: "Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlToText(tt.html); got != tt.want {
				t.Errorf("htmlToText() = %q, want %q", got, tt.want)
			}
		})
	}
}
