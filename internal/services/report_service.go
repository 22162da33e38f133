package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// SettlementLine is one reservation's settlement figures plus the derived
// margin, all in home currency.
type SettlementLine struct {
	repositories.SettlementRow
	MarginKRW int64 `json:"margin_krw"`
}

// SettlementReport is the back-office profit report over a date range.
type SettlementReport struct {
	From           string           `json:"from,omitempty"`
	To             string           `json:"to,omitempty"`
	Rows           []SettlementLine `json:"rows"`
	TotalSaleKRW   int64            `json:"total_sale_krw"`
	TotalCostKRW   int64            `json:"total_cost_krw"`
	TotalMarginKRW int64            `json:"total_margin_krw"`
}

type ReportService struct {
	ReportRepo repositories.ReportRepository
	RequestID  string
}

// Settlement aggregates sale, cost and margin per reservation created inside
// the range (inclusive; YYYY-MM-DD; empty bounds are open).
func (s ReportService) Settlement(from, to string) (SettlementReport, error) {
	if from != "" {
		if _, err := utils.ParseDate(from); err != nil {
			return SettlementReport{}, domain.ValidationError{Field: "from", Msg: "expected YYYY-MM-DD"}
		}
	}
	if to != "" {
		if _, err := utils.ParseDate(to); err != nil {
			return SettlementReport{}, domain.ValidationError{Field: "to", Msg: "expected YYYY-MM-DD"}
		}
	}

	rows, err := s.ReportRepo.SettlementRows(from, to)
	if err != nil {
		return SettlementReport{}, err
	}

	report := SettlementReport{From: from, To: to, Rows: make([]SettlementLine, 0, len(rows))}
	for _, row := range rows {
		line := SettlementLine{SettlementRow: row, MarginKRW: row.SaleKRW - row.CostKRW}
		report.Rows = append(report.Rows, line)
		report.TotalSaleKRW += line.SaleKRW
		report.TotalCostKRW += line.CostKRW
		report.TotalMarginKRW += line.MarginKRW
	}

	utils.LogEvent(s.RequestID, "reports", "settlement", fmt.Sprintf("rows=%d", len(report.Rows)))
	return report, nil
}
