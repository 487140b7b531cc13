package main

import (
	"strings"
	"testing"
	"time"

	"github.com/verifiedwealth/vw/internal/models"
	"github.com/verifiedwealth/vw/internal/store"
)

// Rendering reads replaced entities back out of the store rather than
// formatting the fetch response directly.
func TestRenderingReadsFromStore(t *testing.T) {
	s := store.New()

	s.ReplaceUser(s.Begin(store.TopicUser), &models.User{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	s.ReplaceRanking(s.Begin(store.TopicRanking), &models.Ranking{
		Percentile: 82,
		AgeRange:   "25-34",
		Location:   "London",
		PeerCount:  412,
	})
	s.ReplaceFeedPosts(s.Begin(store.TopicFeed), []models.Post{
		{ID: "p1", Alias: "anon42", Title: "Paid off my car loan", Topic: "debt"},
	})
	s.ReplaceSubscription(s.Begin(store.TopicSubscription), &models.Subscription{
		Tier:      models.TierPremium,
		Status:    "active",
		StartedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	out := formatUser(s.User())
	if !strings.Contains(out, "ada@example.com") {
		t.Errorf("user output missing email:\n%s", out)
	}

	out = formatRanking(s.Ranking(), "USD")
	if !strings.Contains(out, "25-34") || !strings.Contains(out, "412 peers") {
		t.Errorf("ranking output missing peer group:\n%s", out)
	}

	out = formatFeed(s.FeedPosts())
	if !strings.Contains(out, "Paid off my car loan") {
		t.Errorf("feed output missing post title:\n%s", out)
	}

	out = formatSubscription(s.Subscription())
	if !strings.Contains(out, "premium") || !strings.Contains(out, "2026-03-01") {
		t.Errorf("subscription output missing tier or start date:\n%s", out)
	}
}
