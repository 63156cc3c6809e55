package imagegen

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// StyleCatalog holds the vibe paragraphs and logo placement rules used by BuildPrompt.
type StyleCatalog struct {
	Vibes         map[string]string `yaml:"vibes"`
	CenteredLogos []string          `yaml:"centeredLogos"`
}

// LoadStyleCatalog parses a catalog from YAML. Vibe keys are lower-cased.
func LoadStyleCatalog(data []byte) (*StyleCatalog, error) {
	var catalog StyleCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse style catalog: %w", err)
	}

	vibes := make(map[string]string, len(catalog.Vibes))
	for k, v := range catalog.Vibes {
		vibes[strings.ToLower(k)] = v
	}
	catalog.Vibes = vibes
	return &catalog, nil
}

// DefaultStyleCatalog returns the embedded catalog. It panics if the embedded
// file is malformed, which only a broken build can cause.
func DefaultStyleCatalog() *StyleCatalog {
	catalog, err := LoadStyleCatalog(stylesYAML)
	if err != nil {
		panic(err)
	}
	return catalog
}

// vibeParagraph returns the paragraph for a known vibe and whether one exists.
func (c *StyleCatalog) vibeParagraph(vibe string) (string, bool) {
	p, ok := c.Vibes[strings.ToLower(vibe)]
	return p, ok
}

// logoCentered matches media styles exactly.
func (c *StyleCatalog) logoCentered(mediaStyle string) bool {
	for _, s := range c.CenteredLogos {
		if s == mediaStyle {
			return true
		}
	}
	return false
}
