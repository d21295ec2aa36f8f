package auth

import "github.com/avashisht/deardiary-backend/internal/domain"

// AuthResult is returned by Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}

// RegisterResult is returned by Register. No session is created at
// registration time: the user must verify their email before logging in.
type RegisterResult struct {
	User *domain.User

	// VerificationToken is the raw token embedded in the verification link
	// sent to the user. Only its hash is persisted.
	VerificationToken string
}
