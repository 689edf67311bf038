package finance

import (
	"math"
	"time"

	"boekhouder/pkg/models"
)

const (
	isoDate     = "2006-01-02"
	hoursInYear = 365.25 * 24
)

// BookValue returns the straight-line depreciated value of inv at now, never below
// its residual value. An acquisition date that does not parse yields NaN.
func BookValue(inv models.Investment, now time.Time) float64 {
	acquired, err := time.Parse(isoDate, inv.Date)
	if err != nil {
		return math.NaN()
	}
	age := now.Sub(acquired).Hours() / hoursInYear
	if age >= inv.LifespanYears {
		return inv.ResidualValue
	}
	annual := (inv.PurchaseValue - inv.ResidualValue) / inv.LifespanYears
	return math.Max(inv.ResidualValue, inv.PurchaseValue-annual*age)
}

// AssetValue is an investment with its book value at a reference time
type AssetValue struct {
	Investment models.Investment
	BookValue  float64
}

// AssetRegister evaluates BookValue for every investment at now and sums them
func AssetRegister(investments []models.Investment, now time.Time) ([]AssetValue, float64) {
	assets := make([]AssetValue, 0, len(investments))
	var total float64
	for _, inv := range investments {
		bv := BookValue(inv, now)
		assets = append(assets, AssetValue{Investment: inv, BookValue: bv})
		total += bv
	}
	return assets, total
}
