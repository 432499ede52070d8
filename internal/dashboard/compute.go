package dashboard

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// roundConfidence trims an averaged confidence to four decimal places so
// the payload stays stable across floating point accumulation order.
func roundConfidence(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// fillDailyTrend expands sparse per-day counts into a contiguous window of
// days days ending at now, oldest first, with missing days at zero volume.
func fillDailyTrend(counts map[string]int, now time.Time, days int) []DailyCount {
	trend := make([]DailyCount, 0, days)

	start := now.UTC().AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		trend = append(trend, DailyCount{
			Date:  date,
			Count: counts[date],
		})
	}

	return trend
}

// Total sums the distribution. It equals the store's total assessment count
// when every persisted record carries a known label.
func (d Distribution) Total() int {
	return d.LowRisk + d.ModerateRisk + d.HighRisk
}
