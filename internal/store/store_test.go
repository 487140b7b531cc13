package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifiedwealth/vw/internal/models"
)

func TestReplaceAndRead(t *testing.T) {
	s := New()

	gen := s.Begin(TopicAccounts)
	applied := s.ReplaceAccounts(gen, []models.Account{{ID: "a1"}, {ID: "a2"}})

	require.True(t, applied)
	assert.Len(t, s.Accounts(), 2)
}

func TestReplaceNetWorthExplicitAbsence(t *testing.T) {
	s := New()

	gen := s.Begin(TopicNetWorth)
	s.ReplaceNetWorth(gen, &models.NetWorth{NetWorth: 100})
	require.NotNil(t, s.NetWorth())

	gen = s.Begin(TopicNetWorth)
	s.ReplaceNetWorth(gen, nil)
	assert.Nil(t, s.NetWorth(), "absence must be recordable")
}

func TestStaleGenerationDropped(t *testing.T) {
	s := New()

	slow := s.Begin(TopicAccounts)
	fast := s.Begin(TopicAccounts)

	// The later fetch resolves first.
	require.True(t, s.ReplaceAccounts(fast, []models.Account{{ID: "fresh"}}))

	// The earlier fetch resolves late and must not overwrite.
	assert.False(t, s.ReplaceAccounts(slow, []models.Account{{ID: "stale"}}))

	accounts := s.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "fresh", accounts[0].ID)
}

func TestGenerationsIndependentAcrossTopics(t *testing.T) {
	s := New()

	accGen := s.Begin(TopicAccounts)
	nwGen := s.Begin(TopicNetWorth)

	assert.True(t, s.ReplaceNetWorth(nwGen, nil))
	assert.True(t, s.ReplaceAccounts(accGen, nil))
}

func TestSubscribeNotifiesPerTopic(t *testing.T) {
	s := New()

	var topics []Topic
	unsubscribe := s.Subscribe(func(topic Topic) {
		topics = append(topics, topic)
	})

	s.ReplaceAccounts(s.Begin(TopicAccounts), nil)
	s.ReplaceRanking(s.Begin(TopicRanking), &models.Ranking{Percentile: 80})

	require.Len(t, topics, 2)
	assert.Equal(t, TopicAccounts, topics[0])
	assert.Equal(t, TopicRanking, topics[1])

	unsubscribe()
	s.ReplaceFeedPosts(s.Begin(TopicFeed), nil)
	assert.Len(t, topics, 2, "unsubscribed callback must not fire")
}

func TestStaleReplacementDoesNotNotify(t *testing.T) {
	s := New()

	notified := 0
	s.Subscribe(func(Topic) { notified++ })

	slow := s.Begin(TopicFeed)
	fast := s.Begin(TopicFeed)

	s.ReplaceFeedPosts(fast, []models.Post{{ID: "p1"}})
	s.ReplaceFeedPosts(slow, []models.Post{{ID: "p0"}})

	assert.Equal(t, 1, notified)
}

func TestAccountsReturnsCopy(t *testing.T) {
	s := New()
	s.ReplaceAccounts(s.Begin(TopicAccounts), []models.Account{{ID: "a1", Balance: 10}})

	copied := s.Accounts()
	copied[0].Balance = 999

	assert.Equal(t, float64(10), s.Accounts()[0].Balance, "reads must not expose internal state")
}

func TestWholeEntityReplacement(t *testing.T) {
	s := New()

	s.ReplaceAccounts(s.Begin(TopicAccounts), []models.Account{{ID: "a1"}, {ID: "a2"}})
	s.ReplaceAccounts(s.Begin(TopicAccounts), []models.Account{{ID: "a3"}})

	accounts := s.Accounts()
	require.Len(t, accounts, 1, "replacement has no merge semantics")
	assert.Equal(t, "a3", accounts[0].ID)
}
