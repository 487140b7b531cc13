package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest holds the registration form fields.
type RegisterRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	AnnualIncome float64 `json:"annualIncome,omitempty"`
	Country      string  `json:"country"`
	State        string  `json:"state"`
	City         string  `json:"city"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LinkAccountRequest links an aggregator-issued public token to a new account.
type LinkAccountRequest struct {
	UserID          string      `json:"userId"`
	PublicToken     string      `json:"publicToken"`
	InstitutionName string      `json:"institutionName"`
	AccountName     string      `json:"accountName"`
	AccountType     AccountType `json:"accountType"`
	Currency        string      `json:"currency,omitempty"`
}

// RankingRequest holds the peer comparison filters.
type RankingRequest struct {
	AgeRange      string `json:"ageRange"`
	Location      string `json:"location"`
	IncomeBracket string `json:"incomeBracket,omitempty"`
}

// CreatePostRequest holds a new community post.
type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Topic string `json:"topic"`
}

// CreateCommentRequest holds a new comment body.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// UpgradeSubscriptionRequest upgrades to a paid tier.
type UpgradeSubscriptionRequest struct {
	Tier            SubscriptionTier `json:"tier"`
	PaymentIntentID string           `json:"paymentIntentId"`
}

// TrackEventRequest is a fire-and-forget analytics event.
type TrackEventRequest struct {
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
}
