package usecase

import (
	"errors"

	"solarvizyon/internal/domain/entities"
)

var (
	ErrInvalidConsumption     = errors.New("invalid consumption value")
	ErrInvalidConsumptionUnit = errors.New("invalid consumption unit")
	ErrInvalidUnitPrice       = errors.New("invalid unit energy price")
)

const daysPerMonth = 30

// NormalizeConsumption converts the raw consumption figure into canonical
// monthly and annual kWh. For bill_amount the unit price must be positive;
// it is ignored for the energy units.
func NormalizeConsumption(unit entities.ConsumptionUnit, rawValue, unitPrice float64) (entities.Consumption, error) {
	if rawValue <= 0 {
		return entities.Consumption{}, ErrInvalidConsumption
	}

	var monthlyKWh float64
	switch unit {
	case entities.ConsumptionUnitBillAmount:
		if unitPrice <= 0 {
			return entities.Consumption{}, ErrInvalidUnitPrice
		}
		monthlyKWh = rawValue / unitPrice
	case entities.ConsumptionUnitDailyKWh:
		monthlyKWh = rawValue * daysPerMonth
	case entities.ConsumptionUnitMonthlyKWh:
		monthlyKWh = rawValue
	default:
		return entities.Consumption{}, ErrInvalidConsumptionUnit
	}

	return entities.Consumption{
		MonthlyKWh: monthlyKWh,
		AnnualKWh:  monthlyKWh * 12,
	}, nil
}
