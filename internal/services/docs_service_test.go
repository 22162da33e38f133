package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
)

func TestGenerateInvoicePDF(t *testing.T) {
	svc := DocsService{
		DetailLoader: func(code string) (models.ReservationDetail, error) {
			return models.ReservationDetail{
				Reservation: models.Reservation{
					Code:              code,
					PrimaryClientName: "Kim Jihoo",
					TotalAmount:       450,
				},
				ProductSet: models.ProductSet{
					Flights: []models.Flight{{
						ProductCore: models.ProductCore{Status: "Confirmed", TotalAmountKRW: 60000},
						FlightNo:    "KE123", DepartureCity: "ICN", ArrivalCity: "DAD",
					}},
					Hotels: []models.Hotel{{
						ProductCore: models.ProductCore{Status: "Pending", TotalAmountKRW: 540000},
						HotelName:   "Hyatt Regency", Nights: 2,
					}},
				},
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateInvoice("20250110-JH001")
	if err != nil {
		t.Fatalf("generate invoice error: %v", err)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document (%d bytes)", len(pdf))
	}
	if filename != "INVOICE_20250110-JH001.pdf" {
		t.Fatalf("filename: got %q", filename)
	}
}

func TestGenerateInvoicePropagatesLoaderError(t *testing.T) {
	svc := DocsService{
		DetailLoader: func(string) (models.ReservationDetail, error) {
			return models.ReservationDetail{}, domain.NotFoundError{Resource: "reservation"}
		},
	}
	_, _, err := svc.GenerateInvoice("nope")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGenerateSettlementReportPDF(t *testing.T) {
	svc := DocsService{
		ReportLoader: func(from, to string) (SettlementReport, error) {
			return SettlementReport{
				From: from, To: to,
				Rows: []SettlementLine{{
					SettlementRow: repositories.SettlementRow{
						Code: "20250110-JH001", PrimaryClientName: "Kim",
						SaleKRW: 540000, CostKRW: 350000,
					},
					MarginKRW: 190000,
				}},
				TotalSaleKRW: 540000, TotalCostKRW: 350000, TotalMarginKRW: 190000,
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateSettlementReport("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("generate settlement error: %v", err)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document (%d bytes)", len(pdf))
	}
	if !strings.Contains(filename, "2025-01-01") || !strings.Contains(filename, "2025-01-31") {
		t.Fatalf("filename should carry the range: got %q", filename)
	}
}

func TestGenerateSettlementReportPropagatesLoaderError(t *testing.T) {
	boom := errors.New("report query failed")
	svc := DocsService{
		ReportLoader: func(string, string) (SettlementReport, error) {
			return SettlementReport{}, boom
		},
	}
	_, _, err := svc.GenerateSettlementReport("", "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}
