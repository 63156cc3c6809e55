package imagegen

import (
	"strings"

	"statstory-backend-go/internal/models"
)

// referenceNote is appended when an edit request falls back to plain generation.
const referenceNote = "\n\nNote: I've uploaded a reference image of the player/athlete. Please match their appearance, uniform, and style closely."

// PromptInput is everything that shapes the prompt text.
type PromptInput struct {
	Description    string
	MediaStyle     string
	Vibe           string
	Title          string
	Traits         *models.CharacterTraits
	ReferenceImage bool
}

// BuildPrompt renders the deterministic generation prompt.
func (c *StyleCatalog) BuildPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("Create a photorealistic " + in.MediaStyle + " style sports graphic.")

	if paragraph, ok := c.vibeParagraph(in.Vibe); ok {
		b.WriteString("\n" + paragraph)
	} else {
		b.WriteString(" with a " + strings.ToLower(in.Vibe) + " aesthetic.")
	}

	b.WriteString("\nShow the athlete " + in.Description + ".")

	if t := in.Traits; t != nil {
		b.WriteString("\nThe athlete has ")
		if t.HairColor != "" {
			b.WriteString("a " + t.HairColor)
		} else {
			b.WriteString("an")
		}
		b.WriteString(" " + t.HairStyle + " hairstyle")
		if t.FacialHair != "" && t.FacialHair != "none" {
			b.WriteString(" with " + t.FacialHair)
		}
		b.WriteString(".\nThey are " + t.ShirtStatus)
		if t.ShortsColor != "" {
			b.WriteString(" and wearing " + t.ShortsColor + " shorts")
		}
		b.WriteString(".")

		if t.Tattoos != "" && t.Tattoos != "none" && t.Tattoos != models.UnknownTrait {
			b.WriteString("\n" + t.Tattoos + ".")
		}
	}

	if in.ReferenceImage {
		b.WriteString("\nMatch the player's face, hairstyle, and uniform exactly as shown in the reference image.")
		b.WriteString("\nMaintain realistic posture and proportions.")
	}

	if c.logoCentered(in.MediaStyle) {
		b.WriteString("\nAdd a large " + in.MediaStyle + " logo centered at the top of the graphic.")
	} else {
		b.WriteString("\nAdd the " + in.MediaStyle + " logo in the top right corner.")
	}

	if in.Title != "" {
		b.WriteString("\nInclude the player's name \"" + in.Title + "\" in large bold text styled like " + in.MediaStyle + "'s typical typography.")
	}

	return b.String()
}
