package models

// Event is a user-authored record stored under saves/{saveId}/events.
type Event struct {
	ID          string `json:"id" firestore:"-"`
	SaveID      string `json:"saveId" firestore:"saveId"`
	UserID      string `json:"userId" firestore:"userId"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Type        string `json:"type" firestore:"type"` // lower-cased, e.g. "match", "transfer", "recap"
	ImageURL    string `json:"imageURL" firestore:"imageURL"`
	EventDate   string `json:"eventDate" firestore:"eventDate"` // fictional in-game date, free-form
	CreatedAt   string `json:"createdAt" firestore:"createdAt"`
}
