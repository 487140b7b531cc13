package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestExpireFiresCallbackOnce(t *testing.T) {
	m := NewManager(time.Minute, nil)
	m.Activate()

	var fired int32
	m.OnLogout(func() { atomic.AddInt32(&fired, 1) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Expire()
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Errorf("callback fired %d times, want 1", n)
	}
	if m.State() != StateExpiring {
		t.Errorf("state = %v, want expiring", m.State())
	}
}

func TestExpireIgnoredWhenNotActive(t *testing.T) {
	m := NewManager(time.Minute, nil)

	fired := false
	m.OnLogout(func() { fired = true })

	m.Expire() // logged out, no-op

	if fired {
		t.Error("callback must not fire from logged_out state")
	}
	if m.State() != StateLoggedOut {
		t.Errorf("state = %v, want logged_out", m.State())
	}
}

func TestCooldownSettlesToLoggedOut(t *testing.T) {
	m := NewManager(20*time.Millisecond, nil)
	m.Activate()
	m.Expire()

	if m.State() != StateExpiring {
		t.Fatalf("state = %v, want expiring", m.State())
	}

	deadline := time.Now().Add(time.Second)
	for m.State() != StateLoggedOut {
		if time.Now().After(deadline) {
			t.Fatal("session never settled to logged_out")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestActivateReArmsAfterExpiry(t *testing.T) {
	m := NewManager(time.Minute, nil)
	m.Activate()

	var fired int32
	m.OnLogout(func() { atomic.AddInt32(&fired, 1) })

	m.Expire()
	m.Activate() // new credential stored
	m.Expire()   // a fresh episode fires again

	if n := atomic.LoadInt32(&fired); n != 2 {
		t.Errorf("callback fired %d times across two episodes, want 2", n)
	}
}

func TestDeactivateSkipsCallback(t *testing.T) {
	m := NewManager(time.Minute, nil)
	m.Activate()

	fired := false
	m.OnLogout(func() { fired = true })

	m.Deactivate()

	if fired {
		t.Error("explicit deactivation must not fire the callback")
	}
	if m.State() != StateLoggedOut {
		t.Errorf("state = %v, want logged_out", m.State())
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	got, err := TokenExpiry(signed)
	if err != nil {
		t.Fatalf("TokenExpiry returned error: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiryInvalidToken(t *testing.T) {
	if _, err := TokenExpiry("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}

	// Valid JWT without exp claim.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, _ := token.SignedString([]byte("k"))
	if _, err := TokenExpiry(signed); err == nil {
		t.Error("expected error for token without expiry")
	}
}
