package domain

import "time"

const RejectionMessage = "Wrong username or password"

type OutcomeStatus int

const (
	OutcomeRejected OutcomeStatus = iota
	OutcomeAuthenticated
)

// LoginOutcome is the non-fatal result of a credential check. Fatal failures
// are reported as errors instead.
type LoginOutcome struct {
	Status     OutcomeStatus
	AccountID  int64
	Identifier string
	Message    string
}

func Authenticated(accountID int64, identifier string) *LoginOutcome {
	return &LoginOutcome{Status: OutcomeAuthenticated, AccountID: accountID, Identifier: identifier}
}

func Rejected() *LoginOutcome {
	return &LoginOutcome{Status: OutcomeRejected, Message: RejectionMessage}
}

func (o *LoginOutcome) IsAuthenticated() bool {
	return o != nil && o.Status == OutcomeAuthenticated
}

// Session describes the tokens minted for an authenticated account. Turning
// it into cookies is left to the transport layer.
type Session struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}
