package stats

// ImpliedUnitPrice derives a per-unit price from a bulk-lot average
// ("100개당 500" implies 5 per unit).
func ImpliedUnitPrice(bulkAvg float64, multiplier int) float64 {
	if multiplier <= 0 {
		return bulkAvg
	}
	return bulkAvg / float64(multiplier)
}

// PerUnitIsNoise cross-validates raw per-unit observations against the price
// implied by bulk-lot listings. A raw average more than highRatio times the
// implied price, or below lowRatio times it, is treated as troll/typo noise
// and the bulk-derived estimate is shown instead.
func PerUnitIsNoise(rawAvg, implied, highRatio, lowRatio float64) bool {
	if implied <= 0 || rawAvg <= 0 {
		return false
	}
	ratio := rawAvg / implied
	return ratio > highRatio || ratio < lowRatio
}
