package metrics

import "opsdeck/internal/domain/cost"

// MonthlyCostTotal normalizes every cost item to a monthly figure
// (yearly items divide by 12) and sums them. Currencies are not
// converted: the total is summed across currencies and labeled with the
// first item's currency, a known limitation carried over from the
// original design rather than silently fixed.
func MonthlyCostTotal(items []cost.Item) (total float64, currency string) {
	for _, item := range items {
		if currency == "" {
			currency = item.Currency
		}
		if item.Period == cost.PeriodYearly {
			total += item.Amount / 12
		} else {
			total += item.Amount
		}
	}
	return total, currency
}
