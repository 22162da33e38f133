package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the back-office's printable documents: a reservation
// invoice and the settlement report.
type DocsService struct {
	Reservations ReservationService
	Reports      ReportService
	RequestID    string

	// Loaders are injectable for tests.
	DetailLoader func(code string) (models.ReservationDetail, error)
	ReportLoader func(from, to string) (SettlementReport, error)
}

func (s DocsService) GenerateInvoice(code string) ([]byte, string, error) {
	detail, err := s.loadDetail(code)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "code="+code)
	return buildInvoicePDF(detail)
}

func (s DocsService) GenerateSettlementReport(from, to string) ([]byte, string, error) {
	report, err := s.loadReport(from, to)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_settlement", fmt.Sprintf("from=%s to=%s", from, to))
	return buildSettlementPDF(report)
}

func (s DocsService) loadDetail(code string) (models.ReservationDetail, error) {
	if s.DetailLoader != nil {
		return s.DetailLoader(code)
	}
	return s.Reservations.Get(code)
}

func (s DocsService) loadReport(from, to string) (SettlementReport, error) {
	if s.ReportLoader != nil {
		return s.ReportLoader(from, to)
	}
	return s.Reports.Settlement(from, to)
}

func buildInvoicePDF(d models.ReservationDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Reservation : "+d.Code)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued      : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Billed to   : "+safe(d.PrimaryClientName, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Line items:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	n := 0
	writeLine := func(label string, c models.ProductCore) {
		n++
		pdf.MultiCell(0, 6, fmt.Sprintf("%d) %s — %s, %s", n, label, c.Status,
			utils.FormatKRW(c.TotalAmountKRW)), "", "", false)
		pdf.Ln(1)
	}
	for _, f := range d.Flights {
		writeLine(fmt.Sprintf("Flight %s %s-%s", safe(f.FlightNo, "?"), f.DepartureCity, f.ArrivalCity), f.ProductCore)
	}
	for _, h := range d.Hotels {
		writeLine(fmt.Sprintf("Hotel %s (%d nights)", safe(h.HotelName, "?"), h.Nights), h.ProductCore)
	}
	for _, t := range d.Tours {
		writeLine("Tour "+safe(t.TourName, "?"), t.ProductCore)
	}
	for _, rc := range d.RentalCars {
		writeLine(fmt.Sprintf("Rental car %s (%d days)", safe(rc.CarType, "?"), rc.Days), rc.ProductCore)
	}
	for _, ins := range d.Insurances {
		writeLine("Insurance "+safe(ins.PlanName, "?"), ins.ProductCore)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatAmount(d.TotalAmount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Home-currency figures are converted at each line item's exchange rate.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(d.Code)), nil
}

func buildSettlementPDF(r SettlementReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Settlement Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SETTLEMENT REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Period : %s ~ %s", safe(r.From, "open"), safe(r.To, "open")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range r.Rows {
		pdf.MultiCell(0, 6, fmt.Sprintf("%s  %s  sale %s  cost %s  margin %s",
			row.Code, safe(row.PrimaryClientName, "-"),
			utils.FormatKRW(row.SaleKRW), utils.FormatKRW(row.CostKRW), utils.FormatKRW(row.MarginKRW)),
			"", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Totals: sale %s  cost %s  margin %s",
		utils.FormatKRW(r.TotalSaleKRW), utils.FormatKRW(r.TotalCostKRW), utils.FormatKRW(r.TotalMarginKRW)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("SETTLEMENT_%s_%s.pdf", safeFilenamePart(safe(r.From, "open")), safeFilenamePart(safe(r.To, "open")))
	return buf.Bytes(), name, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
