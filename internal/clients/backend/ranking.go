package backend

import (
	"context"

	"github.com/verifiedwealth/vw/internal/models"
)

type rankingAssessRequest struct {
	UserID        string `json:"userId"`
	AgeRange      string `json:"ageRange"`
	Location      string `json:"location"`
	IncomeBracket string `json:"incomeBracket,omitempty"`
}

type rankingProfileRequest struct {
	rankingAssessRequest
	NetWorth float64 `json:"netWorth"`
}

// AssessRanking computes the user's peer-group percentile for the given filters.
func (c *Client) AssessRanking(ctx context.Context, userID string, req models.RankingRequest) (*models.Ranking, error) {
	body := rankingAssessRequest{
		UserID:        userID,
		AgeRange:      req.AgeRange,
		Location:      req.Location,
		IncomeBracket: req.IncomeBracket,
	}

	var ranking models.Ranking
	if err := c.post(ctx, "/ranking/assess", body, &ranking); err != nil {
		return nil, err
	}
	return &ranking, nil
}

// UpsertRankingProfile stores the user's anonymized profile for peer comparison.
func (c *Client) UpsertRankingProfile(ctx context.Context, userID string, req models.RankingRequest, netWorth float64) error {
	body := rankingProfileRequest{
		rankingAssessRequest: rankingAssessRequest{
			UserID:        userID,
			AgeRange:      req.AgeRange,
			Location:      req.Location,
			IncomeBracket: req.IncomeBracket,
		},
		NetWorth: netWorth,
	}
	return c.post(ctx, "/ranking/profile", body, nil)
}
