package models

import "time"

// NetWorthBreakdown is the backend-computed per-category breakdown.
// Credit and loan values may arrive signed; consumers take the absolute
// value before treating them as magnitudes.
type NetWorthBreakdown struct {
	Cash        float64 `json:"cash"`
	Investments float64 `json:"investments"`
	Crypto      float64 `json:"crypto"`
	Credit      float64 `json:"credit"`
	Loans       float64 `json:"loans"`
}

// NetWorth is a backend-computed net worth snapshot for a user.
// When present it is authoritative over any client-side recomputation
// from the account list.
type NetWorth struct {
	UserID           string             `json:"userId"`
	TotalAssets      float64            `json:"totalAssets"`
	TotalLiabilities float64            `json:"totalLiabilities"`
	NetWorth         float64            `json:"netWorth"`
	Breakdown        *NetWorthBreakdown `json:"breakdown,omitempty"`
	CalculatedAt     time.Time          `json:"calculatedAt"`
	History          []NetWorthPoint    `json:"history,omitempty"`
}

// NetWorthPoint is a single normalized point of net worth history.
// Normalization from the looser wire shape (optional netWorth/value/
// assets/liabilities fields) happens at the gateway boundary, so no
// consumer ever probes field shapes.
type NetWorthPoint struct {
	Date        time.Time `json:"date"`
	NetWorth    float64   `json:"netWorth"`
	Assets      float64   `json:"assets"`
	Liabilities float64   `json:"liabilities"`
}
