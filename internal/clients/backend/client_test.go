package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
	"github.com/verifiedwealth/vw/internal/session"
)

// memCreds is an in-memory CredentialStore for tests.
type memCreds struct {
	mu    sync.Mutex
	token string
}

func (m *memCreds) Token(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memCreds) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memCreds) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func (m *memCreds) Close() error { return nil }

var _ interfaces.CredentialStore = (*memCreds)(nil)

func TestRequestAttachesBearerCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.User{ID: "u1"})
	}))
	defer srv.Close()

	creds := &memCreds{token: "tok-123"}
	client := NewClient(creds, nil, WithBaseURL(srv.URL))

	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization header = %q, want Bearer tok-123", gotAuth)
	}
}

func TestRequestOmitsHeaderWithoutCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Post{})
	}))
	defer srv.Close()

	client := NewClient(&memCreds{}, nil, WithBaseURL(srv.URL))

	if _, err := client.ListFeed(context.Background(), models.FeedSortHot, ""); err != nil {
		t.Fatalf("ListFeed returned error: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization header = %q, want empty", gotAuth)
	}
}

func TestUnauthorizedClearsCredentialAndFiresLogoutOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := &memCreds{token: "stale"}
	sess := session.NewManager(time.Minute, nil)
	sess.Activate()

	var logouts int32
	sess.OnLogout(func() { atomic.AddInt32(&logouts, 1) })

	client := NewClient(creds, sess, WithBaseURL(srv.URL), WithRateLimit(100))

	// Two concurrent failing requests must trigger the callback exactly once.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.CurrentUser(context.Background())
			if !IsUnauthorized(err) {
				t.Errorf("expected unauthorized error, got %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&logouts); n != 1 {
		t.Errorf("logout callback fired %d times, want 1", n)
	}

	if token, _ := creds.Token(context.Background()); token != "" {
		t.Errorf("credential not cleared after 401, still %q", token)
	}

	if got := sess.State(); got != session.StateExpiring {
		t.Errorf("session state = %v, want %v", got, session.StateExpiring)
	}
}

func TestNotFoundSurfacedAsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no snapshot yet", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(&memCreds{token: "tok"}, nil, WithBaseURL(srv.URL))

	_, err := client.CachedNetWorth(context.Background(), "u1")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if IsUnauthorized(err) {
		t.Error("404 must not report as unauthorized")
	}
}

func TestServerErrorSurfacedUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	creds := &memCreds{token: "tok"}
	client := NewClient(creds, nil, WithBaseURL(srv.URL))

	_, err := client.ListAccounts(context.Background(), "u1")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}

	// Non-401 failures never touch the credential.
	if token, _ := creds.Token(context.Background()); token != "tok" {
		t.Errorf("credential changed on 500, now %q", token)
	}
}

func TestListAccountsNormalizesTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"accounts": []map[string]any{
				{"id": "a1", "accountType": "cash", "balance": 100.0},
				{"id": "a2", "accountType": "margin", "balance": 50.0},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(&memCreds{token: "tok"}, nil, WithBaseURL(srv.URL))

	accounts, err := client.ListAccounts(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListAccounts returned error: %v", err)
	}

	if len(accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(accounts))
	}
	if accounts[1].AccountType != models.AccountTypeOther {
		t.Errorf("unknown type = %q, want other", accounts[1].AccountType)
	}
}
