package values

import "strconv"

// formatNumber renders a Number the way the teacher's FloatValue does:
// the shortest round-tripping decimal representation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
