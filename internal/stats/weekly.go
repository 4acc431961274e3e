package stats

// DefaultWeeklySeed is the seed the dashboard uses for its weekly series.
const DefaultWeeklySeed int64 = 12345

const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklySeries produces the seven-point weekly activity series shown on the
// dashboard line chart. It is a deterministic placeholder driven by a
// Park-Miller LCG, not an aggregation of real task data; the recurrence and
// mapping are load-bearing because clients golden-test the output.
//
//	state_{n+1} = state_n * 16807 mod 2147483647
//	value_n     = floor((state_{n+1}-1)/2147483646 * 10) + 1 + n
func WeeklySeries(seed int64) []WeeklyDatum {
	series := make([]WeeklyDatum, 0, len(weekdayLabels))

	state := seed
	for day, label := range weekdayLabels {
		state = (state * lcgMultiplier) % lcgModulus
		norm := float64(state-1) / float64(lcgModulus-1)
		series = append(series, WeeklyDatum{
			Name:  label,
			Value: int(norm*10) + 1 + day,
		})
	}

	return series
}
