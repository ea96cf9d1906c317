package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"numerica-backend/internal/domain"
	"numerica-backend/internal/domain/models"
	"numerica-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService renders a filtered payroll page as a PDF for download.
type ExportService struct {
	Payroll   PayrollService
	RequestID string
}

// GeneratePDF runs the same listing pipeline as the JSON endpoint and lays
// the page out as a landscape table. Returns the bytes and a filename.
func (s ExportService) GeneratePDF(ctx context.Context, req ListRequest) ([]byte, string, error) {
	items, pagination, err := s.Payroll.List(ctx, req)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "generate_pdf",
		fmt.Sprintf("rows=%d total=%d", len(items), pagination.Total))

	data, err := buildPayrollPDF(items, pagination)
	if err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("nomina_%s.pdf", time.Now().Format("20060102_150405"))
	return data, name, nil
}

func buildPayrollPDF(items []models.PayrollRecord, pagination models.Pagination) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Histórico de Nóminas", true)
	pdf.AddPage()

	// Core fonts are cp1252; accented column values need translation.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Histórico de Nóminas"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Página %d de %d — %d registros en total",
		pagination.Page, pagination.TotalPages, pagination.Total))
	pdf.Ln(10)

	headers := []string{"Nombre", "Puesto", "Sucursal", "Periodo", "Sueldo", "Percepciones", "Estado"}
	widths := []float64{65, 55, 45, 25, 28, 32, 22}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range items {
		cells := []string{
			rec.Nombre,
			rec.Puesto,
			rec.Sucursal,
			rec.Periodo,
			fmt.Sprintf("%.2f", rec.Sueldo),
			fmt.Sprintf("%.2f", rec.TotalPercepciones),
			rec.Estado,
		}
		for i, c := range cells {
			align := "L"
			if i == 4 || i == 5 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if pagination.Truncated {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr("Resultado truncado: el conjunto filtrado excede el límite de candidatos."), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.InternalError{Msg: "no se pudo generar el pdf", Err: err}
	}
	return buf.Bytes(), nil
}
