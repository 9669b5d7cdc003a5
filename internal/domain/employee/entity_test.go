package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalAllowances(t *testing.T) {
	emp := Employee{
		Allowances: map[string]decimal.Decimal{
			"housing":   decimal.NewFromInt(1500),
			"transport": decimal.NewFromInt(500),
		},
	}
	assert.True(t, emp.TotalAllowances().Equal(decimal.NewFromInt(2000)))

	empty := Employee{}
	assert.True(t, empty.TotalAllowances().IsZero())
}

func TestTotalDeductions(t *testing.T) {
	emp := Employee{
		Deductions: map[string]decimal.Decimal{
			"pf":        decimal.NewFromInt(500),
			"insurance": decimal.RequireFromString("120.50"),
		},
	}
	assert.Equal(t, "620.50", emp.TotalDeductions().StringFixed(2))

	empty := Employee{}
	assert.True(t, empty.TotalDeductions().IsZero())
}
