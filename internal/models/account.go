package models

import "time"

// AccountType categorizes a linked financial account.
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeCrypto     AccountType = "crypto"
	AccountTypeOther      AccountType = "other"
)

// IsLiability reports whether balances of this type represent money owed.
// Liability balances are sign-normalized (absolute value) before being
// treated as a magnitude in breakdowns.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCredit || t == AccountTypeLoan
}

// TypeMeta carries display metadata for an account type.
type TypeMeta struct {
	Label string
	Icon  string
	Color string // hex, no leading '#'
}

var typeMeta = map[AccountType]TypeMeta{
	AccountTypeCash:       {Label: "Cash", Icon: "💵", Color: "10b981"},
	AccountTypeInvestment: {Label: "Investments", Icon: "📈", Color: "3b82f6"},
	AccountTypeCredit:     {Label: "Credit", Icon: "💳", Color: "ef4444"},
	AccountTypeLoan:       {Label: "Loans", Icon: "🏦", Color: "dc2626"},
	AccountTypeCrypto:     {Label: "Crypto", Icon: "🪙", Color: "f59e0b"},
	AccountTypeOther:      {Label: "Other", Icon: "🧾", Color: "6366f1"},
}

// Meta returns display metadata for the account type, falling back to
// the "other" entry for unknown types.
func (t AccountType) Meta() TypeMeta {
	if m, ok := typeMeta[t]; ok {
		return m
	}
	return typeMeta[AccountTypeOther]
}

// Normalize maps unknown account types to "other".
func (t AccountType) Normalize() AccountType {
	if _, ok := typeMeta[t]; ok {
		return t
	}
	return AccountTypeOther
}

// Account represents a linked financial account. Accounts are owned by the
// backend; the client holds replaceable copies and never mutates one.
type Account struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	InstitutionName string      `json:"institutionName"`
	AccountName     string      `json:"accountName"`
	AccountType     AccountType `json:"accountType"`
	Balance         float64     `json:"balance"`
	Currency        string      `json:"currency"`
	LastSynced      time.Time   `json:"lastSynced"`
	IsActive        bool        `json:"isActive"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// CurrencyOrDefault returns the account currency, falling back to the
// given default when absent.
func (a *Account) CurrencyOrDefault(def string) string {
	if a.Currency != "" {
		return a.Currency
	}
	return def
}
