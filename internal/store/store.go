// Package store holds the latest fetched domain snapshots for read access
// by presentation code. It is a passive container: no I/O, no derived
// computation. Every mutation is a whole-entity replacement guarded by a
// per-topic generation token, so a superseded in-flight fetch can never
// overwrite data from a later fetch.
package store

import (
	"sync"

	"github.com/verifiedwealth/vw/internal/models"
)

// Topic identifies one replaceable entity held by the store.
type Topic string

const (
	TopicUser         Topic = "user"
	TopicAccounts     Topic = "accounts"
	TopicNetWorth     Topic = "net_worth"
	TopicRanking      Topic = "ranking"
	TopicSubscription Topic = "subscription"
	TopicFeed         Topic = "feed"
)

// Generation is a fetch token issued by Begin. A replacement is applied
// only if no later generation for the same topic has already been applied.
type Generation struct {
	topic Topic
	seq   uint64
}

// Topic returns the topic this generation was issued for.
func (g Generation) Topic() Topic { return g.topic }

// Store is the in-memory domain snapshot container. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	user         *models.User
	accounts     []models.Account
	netWorth     *models.NetWorth
	ranking      *models.Ranking
	subscription *models.Subscription
	feedPosts    []models.Post

	issued  map[Topic]uint64
	applied map[Topic]uint64

	subs    map[int]func(Topic)
	nextSub int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		issued:  make(map[Topic]uint64),
		applied: make(map[Topic]uint64),
		subs:    make(map[int]func(Topic)),
	}
}

// Begin issues a generation token for a fetch against the given topic.
// Call it before starting the request; pass the token to the matching
// Replace operation when the response arrives.
func (s *Store) Begin(topic Topic) Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[topic]++
	return Generation{topic: topic, seq: s.issued[topic]}
}

// Subscribe registers a notification callback invoked after every applied
// replacement. It returns an unsubscribe function. Callbacks run outside
// the store lock and must not assume ordering across topics.
func (s *Store) Subscribe(fn func(Topic)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// apply runs mutate under the lock if gen is still current, then notifies
// subscribers. Returns false when the generation was superseded.
func (s *Store) apply(gen Generation, mutate func()) bool {
	s.mu.Lock()
	if gen.seq <= s.applied[gen.topic] {
		s.mu.Unlock()
		return false
	}
	s.applied[gen.topic] = gen.seq
	mutate()
	subs := make([]func(Topic), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(gen.topic)
	}
	return true
}

// ReplaceUser replaces the authenticated user (nil on logout).
func (s *Store) ReplaceUser(gen Generation, user *models.User) bool {
	return s.apply(gen, func() { s.user = user })
}

// ReplaceAccounts replaces the full account list.
func (s *Store) ReplaceAccounts(gen Generation, accounts []models.Account) bool {
	return s.apply(gen, func() { s.accounts = accounts })
}

// ReplaceNetWorth replaces the net worth snapshot. A nil value records
// explicit absence (no snapshot calculated yet).
func (s *Store) ReplaceNetWorth(gen Generation, nw *models.NetWorth) bool {
	return s.apply(gen, func() { s.netWorth = nw })
}

// ReplaceRanking replaces the peer ranking result.
func (s *Store) ReplaceRanking(gen Generation, ranking *models.Ranking) bool {
	return s.apply(gen, func() { s.ranking = ranking })
}

// ReplaceSubscription replaces the subscription snapshot.
func (s *Store) ReplaceSubscription(gen Generation, sub *models.Subscription) bool {
	return s.apply(gen, func() { s.subscription = sub })
}

// ReplaceFeedPosts replaces the community feed.
func (s *Store) ReplaceFeedPosts(gen Generation, posts []models.Post) bool {
	return s.apply(gen, func() { s.feedPosts = posts })
}

// User returns the current user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Accounts returns a copy of the current account list.
func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// NetWorth returns the current snapshot, or nil when absent.
func (s *Store) NetWorth() *models.NetWorth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.netWorth
}

// Ranking returns the current ranking, or nil.
func (s *Store) Ranking() *models.Ranking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ranking
}

// Subscription returns the current subscription, or nil.
func (s *Store) Subscription() *models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subscription
}

// FeedPosts returns a copy of the current feed.
func (s *Store) FeedPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.feedPosts))
	copy(out, s.feedPosts)
	return out
}
