package domain

// Stats holds the aggregate figures computed over the eligible project set.
// An empty set yields the zero value.
type Stats struct {
	Count      int     `json:"count"`
	TotalStars int     `json:"total_stars"`
	TotalForks int     `json:"total_forks"`
	MeanStars  float64 `json:"mean_stars"`
}
