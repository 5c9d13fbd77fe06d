package usecase

import (
	"errors"
	"math"
	"testing"

	"solarvizyon/internal/domain/entities"
)

func TestAmortizedMonthlyPayment(t *testing.T) {
	t.Run("reference amortization", func(t *testing.T) {
		// 500000 at 3.5% monthly over 24 months.
		got, err := AmortizedMonthlyPayment(entities.LoanTerms{
			PrincipalLocal: 500000,
			MonthlyRate:    0.035,
			TermMonths:     24,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		factor := math.Pow(1.035, 24)
		want := 500000 * (0.035 * factor) / (factor - 1)
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("expected payment %v, got %v", want, got)
		}
		if got <= 500000/24.0 {
			t.Fatalf("interest-bearing payment %v should exceed straight division", got)
		}
	})

	t.Run("zero rate divides the principal", func(t *testing.T) {
		got, err := AmortizedMonthlyPayment(entities.LoanTerms{
			PrincipalLocal: 120000,
			MonthlyRate:    0,
			TermMonths:     24,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5000 {
			t.Fatalf("expected 5000, got %v", got)
		}
	})

	t.Run("total repaid covers the principal", func(t *testing.T) {
		terms := entities.LoanTerms{PrincipalLocal: 250000, MonthlyRate: 0.02, TermMonths: 36}
		got, err := AmortizedMonthlyPayment(terms)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got*36 <= 250000 {
			t.Fatalf("total repaid %v must exceed principal", got*36)
		}
	})

	t.Run("degenerate terms rejected", func(t *testing.T) {
		cases := []entities.LoanTerms{
			{PrincipalLocal: 0, MonthlyRate: 0.02, TermMonths: 12},
			{PrincipalLocal: -1, MonthlyRate: 0.02, TermMonths: 12},
			{PrincipalLocal: 100000, MonthlyRate: -0.01, TermMonths: 12},
			{PrincipalLocal: 100000, MonthlyRate: 0.02, TermMonths: 0},
			{PrincipalLocal: 100000, MonthlyRate: 0, TermMonths: 0},
		}
		for _, terms := range cases {
			if _, err := AmortizedMonthlyPayment(terms); !errors.Is(err, ErrInvalidLoanTerms) {
				t.Fatalf("terms %+v: expected ErrInvalidLoanTerms, got %v", terms, err)
			}
		}
	})
}
