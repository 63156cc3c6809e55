package models

// Post is a generated social-media style graphic stored under saves/{saveId}/posts.
type Post struct {
	ID          string `json:"id" firestore:"-"`
	SaveID      string `json:"saveId" firestore:"saveId"`
	Title       string `json:"title" firestore:"title"`
	Vibe        string `json:"vibe" firestore:"vibe"`
	MediaStyle  string `json:"mediaStyle" firestore:"mediaStyle"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"imageURL" firestore:"imageURL"`
	CreatedAt   string `json:"createdAt" firestore:"createdAt"`
}
