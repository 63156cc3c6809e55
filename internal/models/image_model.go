package models

// UnknownTrait is stored for any trait the vision model could not determine.
const UnknownTrait = "unknown"

// CharacterTraits is a structured visual description of an athlete.
type CharacterTraits struct {
	HairStyle   string `json:"hairStyle"`
	HairColor   string `json:"hairColor"`
	FacialHair  string `json:"facialHair"`
	ShirtStatus string `json:"shirtStatus"`
	ShortsColor string `json:"shortsColor"`
	Tattoos     string `json:"tattoos"`
}

// FillUnknown replaces every empty trait with UnknownTrait.
func (t *CharacterTraits) FillUnknown() {
	for _, field := range []*string{&t.HairStyle, &t.HairColor, &t.FacialHair, &t.ShirtStatus, &t.ShortsColor, &t.Tattoos} {
		if *field == "" {
			*field = UnknownTrait
		}
	}
}

// GenerateImageRequest is the body of POST /api/images/generate.
type GenerateImageRequest struct {
	Title           string           `json:"title,omitempty"`
	Description     string           `json:"description"`
	MediaStyle      string           `json:"mediaStyle"`
	Vibe            string           `json:"vibe"`
	ImageBase64     string           `json:"imageBase64,omitempty"`
	CharacterTraits *CharacterTraits `json:"characterTraits,omitempty"`
}

// GenerateImageResponse carries the generated image.
type GenerateImageResponse struct {
	ImageBase64 string `json:"imageBase64"`
}

// AnalyzeImageRequest is the body of POST /api/images/analyze.
type AnalyzeImageRequest struct {
	ImageBase64 string `json:"imageBase64"`
}
