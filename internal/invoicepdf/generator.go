// Package invoicepdf renders invoice payloads into print-ready PDF
// attachments using headless Chrome, degrading to the raw HTML document when
// no browser is available.
package invoicepdf

import (
	"agencydesk-server/internal/observability"
	"agencydesk-server/internal/store"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const renderTimeout = 30 * time.Second

type Generator struct {
	logger   *observability.Logger
	printPDF func(ctx context.Context, html string) ([]byte, error)
}

func New(logger *observability.Logger) *Generator {
	return &Generator{
		logger:   logger,
		printPDF: printWithChrome,
	}
}

// Generate renders the invoice into attachment bytes and a file name. It
// never returns an error: when PDF rendering is unavailable or fails, the
// rendered HTML document is returned instead so the send still proceeds with
// a degraded attachment.
func (g *Generator) Generate(ctx context.Context, invoice store.InvoiceData, profile store.BusinessProfile) ([]byte, string) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "invoice_number", Value: invoice.InvoiceNumber},
	)

	html, err := renderInvoiceHTML(invoice, profile)
	if err != nil {
		g.logger.Error(ctx, "failed to render invoice document", err)
		html = fmt.Sprintf("<html><body><h1>Invoice %s</h1><p>Total: %.2f %s</p></body></html>",
			template.HTMLEscapeString(invoice.InvoiceNumber), invoice.Total, template.HTMLEscapeString(invoice.Currency))
	}

	pdf, err := g.printPDF(ctx, html)
	if err != nil {
		g.logger.InfoWithError(ctx, "PDF renderer unavailable, attaching HTML document instead", err)
		return []byte(html), fmt.Sprintf("invoice-%s.html", invoice.InvoiceNumber)
	}

	return pdf, fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber)
}

// printWithChrome renders HTML to PDF through a headless Chrome instance.
func printWithChrome(ctx context.Context, html string) (pdf []byte, err error) {
	// chromedp panics in some environments when no browser binary exists;
	// a rendering failure must never take down the delivery batch.
	defer func() {
		if r := recover(); r != nil {
			pdf = nil
			err = fmt.Errorf("pdf renderer panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	err = chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, printErr := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if printErr != nil {
				return printErr
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print invoice to PDF: %w", err)
	}

	return pdf, nil
}

// renderInvoiceHTML produces the invoice document markup.
func renderInvoiceHTML(invoice store.InvoiceData, profile store.BusinessProfile) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Invoice store.InvoiceData
		Profile store.BusinessProfile
	}{invoice, profile}

	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute invoice template: %w", err)
	}
	return buf.String(), nil
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(amount float64) string { return fmt.Sprintf("%.2f", amount) },
	"date":  func(t time.Time) string { return t.Format("January 2, 2006") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 48px; }
	h1 { font-size: 28px; margin-bottom: 4px; }
	.meta { color: #6b7280; margin-bottom: 32px; }
	.parties { display: flex; justify-content: space-between; margin-bottom: 32px; }
	table { width: 100%; border-collapse: collapse; }
	th { text-align: left; border-bottom: 2px solid #1f2937; padding: 8px 4px; }
	td { border-bottom: 1px solid #e5e7eb; padding: 8px 4px; }
	.num { text-align: right; }
	.totals { margin-top: 16px; width: 40%; margin-left: auto; }
	.totals td { border: none; }
	.grand { font-weight: bold; border-top: 2px solid #1f2937; }
	.notes { margin-top: 32px; color: #6b7280; font-size: 13px; }
</style>
</head>
<body>
	<h1>Invoice {{.Invoice.InvoiceNumber}}</h1>
	<div class="meta">
		Issued {{date .Invoice.IssuedAt}} &middot; Due {{date .Invoice.DueAt}}
	</div>
	<div class="parties">
		<div>
			<strong>{{.Profile.BusinessName}}</strong><br>
			{{if .Profile.Address}}{{.Profile.Address}}<br>{{end}}
			{{if .Profile.Email}}{{.Profile.Email}}<br>{{end}}
			{{if .Profile.Phone}}{{.Profile.Phone}}<br>{{end}}
			{{if .Profile.TaxID}}Tax ID: {{.Profile.TaxID}}{{end}}
		</div>
		<div>
			<strong>Billed to</strong><br>
			{{.Invoice.ClientName}}<br>
			{{if .Invoice.ClientAddress}}{{.Invoice.ClientAddress}}<br>{{end}}
			{{.Invoice.ClientEmail}}
		</div>
	</div>
	<table>
		<tr><th>Description</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Amount</th></tr>
		{{range .Invoice.Items}}
		<tr>
			<td>{{.Description}}</td>
			<td class="num">{{money .Quantity}}</td>
			<td class="num">{{money .UnitPrice}}</td>
			<td class="num">{{money .Amount}}</td>
		</tr>
		{{end}}
	</table>
	<table class="totals">
		<tr><td>Subtotal</td><td class="num">{{money .Invoice.Subtotal}}</td></tr>
		<tr><td>Tax ({{money .Invoice.TaxRate}}%)</td><td class="num">{{money .Invoice.TaxAmount}}</td></tr>
		<tr class="grand"><td>Total ({{.Invoice.Currency}})</td><td class="num">{{money .Invoice.Total}}</td></tr>
	</table>
	{{if .Invoice.Notes}}<div class="notes">{{.Invoice.Notes}}</div>{{end}}
</body>
</html>`))
