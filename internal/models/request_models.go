package models

// CreateSaveRequest represents the request body for creating a save.
type CreateSaveRequest struct {
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

// UpdateSaveRequest represents the request body for updating a save.
// Pointers distinguish "not sent" from an empty value.
type UpdateSaveRequest struct {
	Name  *string `json:"name,omitempty"`
	Sport *string `json:"sport,omitempty"`
}

// CreateEventRequest represents the request body for creating an event.
type CreateEventRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ImageURL    string `json:"imageURL,omitempty"`
	EventDate   string `json:"eventDate,omitempty"`
}

// UpdateEventRequest represents the request body for updating an event.
// Title, ImageURL and EventDate may be cleared by sending "".
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	ImageURL    *string `json:"imageURL,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"`
}

// CreatePostRequest represents the request body for creating a post.
type CreatePostRequest struct {
	Title       string `json:"title,omitempty"`
	Vibe        string `json:"vibe"`
	MediaStyle  string `json:"mediaStyle"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
}

// UpdatePostRequest represents the request body for updating a post.
// Only Title may be cleared by sending "".
type UpdatePostRequest struct {
	Title       *string `json:"title,omitempty"`
	Vibe        *string `json:"vibe,omitempty"`
	MediaStyle  *string `json:"mediaStyle,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageURL,omitempty"`
}
