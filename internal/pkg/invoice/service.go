// internal/pkg/invoice/service.go
package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/order"
)

// Service handles PDF invoice generation
type Service struct {
	config *config.Config
}

// NewService creates a new invoice service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// Generate renders a PDF invoice for an order
func (s *Service) Generate(o *order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.generateHTML(s.invoiceData(o))
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) invoiceData(o *order.Order) Data {
	lines := make([]Line, len(o.Items))
	for i, item := range o.Items {
		lines[i] = Line{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Price * float64(item.Quantity),
		}
	}
	return Data{
		InvoiceNumber: fmt.Sprintf("INV-%d", o.ID),
		InvoiceDate:   time.Now().Format("January 2, 2006"),
		OrderDate:     o.OrderDate.Format("January 2, 2006"),
		Order:         o,
		Lines:         lines,
		PaymentLabel:  o.PaymentStatusDisplay(),
		Company: CompanyInfo{
			Name:    s.config.Company.Name,
			Address: s.config.Company.Address,
			Phone:   s.config.Company.Phone,
			Email:   s.config.Company.Email,
			Website: s.config.Company.Website,
		},
	}
}

// generateHTML renders the invoice template; split out so the markup can be
// tested without a wkhtmltopdf binary
func (s *Service) generateHTML(data Data) (string, error) {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
	}).Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Data represents the data passed to the invoice template
type Data struct {
	InvoiceNumber string       `json:"invoice_number"`
	InvoiceDate   string       `json:"invoice_date"`
	OrderDate     string       `json:"order_date"`
	Order         *order.Order `json:"order"`
	Lines         []Line       `json:"lines"`
	PaymentLabel  string       `json:"payment_label"`
	Company       CompanyInfo  `json:"company"`
}

// Line is one priced row of the invoice
type Line struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}
