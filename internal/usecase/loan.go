package usecase

import (
	"errors"
	"math"

	"solarvizyon/internal/domain/entities"
)

var ErrInvalidLoanTerms = errors.New("invalid loan terms")

// AmortizedMonthlyPayment computes the fixed monthly installment for the
// given loan. A zero rate degrades to straight principal division; a zero
// rate with a zero term is degenerate and rejected.
func AmortizedMonthlyPayment(terms entities.LoanTerms) (float64, error) {
	if terms.PrincipalLocal <= 0 || terms.MonthlyRate < 0 || terms.TermMonths < 0 {
		return 0, ErrInvalidLoanTerms
	}
	if terms.TermMonths == 0 {
		return 0, ErrInvalidLoanTerms
	}

	r := terms.MonthlyRate
	n := float64(terms.TermMonths)
	if r == 0 {
		return terms.PrincipalLocal / n, nil
	}

	factor := math.Pow(1+r, n)
	return terms.PrincipalLocal * (r * factor) / (factor - 1), nil
}
