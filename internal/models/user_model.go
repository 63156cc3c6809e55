package models

// User represents an app user. The document ID is the identity provider UID.
type User struct {
	ID        string `json:"id" firestore:"id"`
	CreatedAt string `json:"createdAt" firestore:"createdAt"`
	ProStatus bool   `json:"proStatus" firestore:"proStatus"`
	Email     string `json:"email,omitempty" firestore:"email,omitempty"`
}

// AuthTokenRequest is the body of POST /api/auth/token.
type AuthTokenRequest struct {
	IDToken string `json:"idToken"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
