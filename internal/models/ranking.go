package models

// Ranking is the backend-computed peer comparison for a user.
type Ranking struct {
	Percentile      float64 `json:"percentile"`
	AgeRange        string  `json:"ageRange"`
	Location        string  `json:"location"`
	IncomeBracket   string  `json:"incomeBracket,omitempty"`
	PeerCount       int     `json:"peerCount"`
	UserNetWorth    float64 `json:"userNetWorth"`
	AverageNetWorth float64 `json:"averageNetWorth"`
}
