package core

// CategoryTotal is the sum of amounts for one exact category string.
type CategoryTotal struct {
	Category string
	Total    float64
}

// CategoryShare adds the percentage of the grand total to a CategoryTotal.
type CategoryShare struct {
	Category string
	Total    float64
	Percent  float64 // 0-100, unrounded
}

// Shares turns grouped totals into percentages of grand. Percent is 0 for
// every entry when grand is 0.
func Shares(totals []CategoryTotal, grand float64) []CategoryShare {
	out := make([]CategoryShare, len(totals))
	for i, t := range totals {
		out[i] = CategoryShare{Category: t.Category, Total: t.Total}
		if grand != 0 {
			out[i].Percent = 100 * t.Total / grand
		}
	}
	return out
}
