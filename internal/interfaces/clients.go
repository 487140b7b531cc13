// Package interfaces defines service contracts for the Verified Wealth client
package interfaces

import (
	"context"

	"github.com/verifiedwealth/vw/internal/models"
)

// BackendClient provides access to the Verified Wealth backend API.
// Every call attaches the stored bearer credential when one exists; an
// authorization failure clears the credential, drives the session state
// machine, and is still surfaced to the caller.
type BackendClient interface {
	// Auth
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool

	// Accounts
	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)
	LinkAccount(ctx context.Context, req models.LinkAccountRequest) (*models.Account, error)
	RefreshAccounts(ctx context.Context, userID string) ([]models.Account, error)

	// Net worth
	CachedNetWorth(ctx context.Context, userID string) (*models.NetWorth, error)
	CalculateNetWorth(ctx context.Context, userID string) (*models.NetWorth, error)

	// Ranking
	AssessRanking(ctx context.Context, userID string, req models.RankingRequest) (*models.Ranking, error)
	UpsertRankingProfile(ctx context.Context, userID string, req models.RankingRequest, netWorth float64) error

	// Community
	ListFeed(ctx context.Context, sort models.FeedSort, topic string) ([]models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	GetThread(ctx context.Context, postID string) (*models.Thread, error)
	CreateComment(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error)
	VotePost(ctx context.Context, postID string, delta int) error
	VoteComment(ctx context.Context, commentID string, delta int) error

	// Aggregator link
	CreateLinkToken(ctx context.Context) (string, error)

	// Subscription
	GetSubscription(ctx context.Context, userID string) (*models.Subscription, error)
	UpgradeSubscription(ctx context.Context, userID string, req models.UpgradeSubscriptionRequest) (*models.Subscription, error)
	DowngradeSubscription(ctx context.Context, userID string) (*models.Subscription, error)

	// Analytics
	TrackEvent(ctx context.Context, userID string, req models.TrackEventRequest) error
}
