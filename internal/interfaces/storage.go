package interfaces

import "context"

// CredentialStore persists the single bearer credential, the sole
// durable client-side state.
type CredentialStore interface {
	// Token returns the stored credential, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// Set stores the credential, replacing any prior value.
	Set(ctx context.Context, token string) error

	// Clear removes the stored credential. Clearing an absent
	// credential is not an error.
	Clear(ctx context.Context) error

	Close() error
}
