package response

import (
	"math"

	"solarvizyon/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var trPrinter = message.NewPrinter(language.Turkish)

// FormatLocalCurrency renders a monetary value with Turkish thousands
// separators, e.g. 1234567.8 -> "1.234.568".
func FormatLocalCurrency(v float64) string {
	return trPrinter.Sprintf("%d", int64(math.Round(v)))
}

// FormattedFigures is the presentation block of the report: the headline
// numbers pre-rendered per locale convention for the page shell.
type FormattedFigures struct {
	TotalCost      string `json:"total_cost"`
	MonthlySavings string `json:"monthly_savings"`
	SurplusRevenue string `json:"surplus_revenue,omitempty"`
	LoanPayment    string `json:"loan_payment,omitempty"`
}

// AnalysisResponse wraps the full report with the formatted headline
// figures.
type AnalysisResponse struct {
	Report    entities.AnalysisReport `json:"report"`
	Formatted FormattedFigures        `json:"formatted"`
}

func FromReport(r entities.AnalysisReport) AnalysisResponse {
	res := AnalysisResponse{
		Report: r,
		Formatted: FormattedFigures{
			TotalCost:      FormatLocalCurrency(r.Cost.TotalLocal),
			MonthlySavings: FormatLocalCurrency(r.Production.MonthlySavingsLocal),
		},
	}
	if r.Production.SurplusRevenueLocal > 0 {
		res.Formatted.SurplusRevenue = FormatLocalCurrency(r.Production.SurplusRevenueLocal)
	}
	if r.Loan != nil {
		res.Formatted.LoanPayment = FormatLocalCurrency(r.Loan.MonthlyPaymentLocal)
	}
	return res
}
