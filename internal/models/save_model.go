package models

// Save is a named game-state container owned by exactly one user.
type Save struct {
	ID        string `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID    string `json:"userId" firestore:"userId"`
	Name      string `json:"name" firestore:"name"`
	Sport     string `json:"sport" firestore:"sport"`
	CreatedAt string `json:"createdAt" firestore:"createdAt"`
}

// SaveFilter narrows ListSaves. An empty Sport (or "All") means no filter.
type SaveFilter struct {
	Sport string
}
