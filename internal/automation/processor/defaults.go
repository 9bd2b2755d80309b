package processor

import "agencydesk-server/internal/store"

// defaultTemplate describes one entry of the default template catalog that
// is seeded for a tenant on first automation activation.
type defaultTemplate struct {
	Name      string
	Subject   string
	Body      string
	Variables store.StringList
}

// defaultTemplateCatalog holds one default template per supported event.
var defaultTemplateCatalog = map[string]defaultTemplate{
	store.EventClientCreated: {
		Name:    "Client welcome",
		Subject: "Welcome to {{agency_name}}!",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p>Welcome aboard! We're thrilled to be working with you.</p>
<p>You'll hear from us whenever there's an update on your projects or invoices. If you have any questions in the meantime, just reply to this email.</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "agency_name"},
	},
	store.EventProjectStarted: {
		Name:    "Project kickoff",
		Subject: "Your project {{project_name}} has started",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p>Good news: work on <strong>{{project_name}}</strong> has officially started.</p>
<p>We'll keep you posted on milestones as we go.</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "project_name", "agency_name"},
	},
	store.EventProjectCompleted: {
		Name:    "Project completed",
		Subject: "{{project_name}} is complete!",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p><strong>{{project_name}}</strong> is done and delivered. It's been a pleasure working on it.</p>
<p>We'd love to hear your feedback, and we're here whenever the next project comes up.</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "project_name", "agency_name"},
	},
	store.EventProjectOnHold: {
		Name:    "Project on hold",
		Subject: "{{project_name}} is temporarily on hold",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p>Just a heads-up that <strong>{{project_name}}</strong> has been put on hold for now.</p>
<p>We'll reach out as soon as work resumes.</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "project_name", "agency_name"},
	},
	store.EventInvoiceCreated: {
		Name:    "New invoice",
		Subject: "Invoice {{invoice_number}} from {{agency_name}}",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p>A new invoice <strong>{{invoice_number}}</strong> for <strong>{{invoice_amount}}</strong> has been issued. Payment is due by {{due_date}}.</p>
<p>Thank you for your business!</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "invoice_number", "invoice_amount", "due_date", "agency_name"},
	},
	store.EventInvoiceOverdue: {
		Name:    "Invoice overdue reminder",
		Subject: "Reminder: invoice {{invoice_number}} is past due",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p>This is a friendly reminder that invoice <strong>{{invoice_number}}</strong> for <strong>{{invoice_amount}}</strong> was due on {{due_date}} and is still outstanding.</p>
<p>If you've already sent payment, please disregard this note.</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "invoice_number", "invoice_amount", "due_date", "agency_name"},
	},
	store.EventPaymentReceived: {
		Name:    "Payment received",
		Subject: "Payment received - Thank you!",
		Body: `<html><body>
<p>Hi {{client_name}},</p>
<p>We've received your payment of <strong>{{payment_amount}}</strong>. Thank you!</p>
<p>A receipt has been recorded on your account.</p>
<p>Best,<br>{{agency_name}}</p>
</body></html>`,
		Variables: store.StringList{"client_name", "payment_amount", "agency_name"},
	},
}
