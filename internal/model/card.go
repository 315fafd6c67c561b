package model

import "fmt"

// ImagePosition is where a card image sits relative to the goal text.
type ImagePosition string

const (
	ImageTop        ImagePosition = "top"
	ImageBottom     ImagePosition = "bottom"
	ImageBackground ImagePosition = "background"
)

// Valid reports whether p is a known position.
func (p ImagePosition) Valid() bool {
	switch p {
	case ImageTop, ImageBottom, ImageBackground:
		return true
	}
	return false
}

// UnmarshalText rejects unknown positions.
func (p *ImagePosition) UnmarshalText(text []byte) error {
	v := ImagePosition(text)
	if !v.Valid() {
		return fmt.Errorf("unknown image position %q", string(text))
	}
	*p = v
	return nil
}

// CardCustomization is optional decoration on a goal card.
type CardCustomization struct {
	Image    *CardImage `json:"image,omitempty" yaml:"image,omitempty"`
	Subtitle string     `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

// CardImage is an image shown on a goal card.
type CardImage struct {
	URL      string        `json:"url" yaml:"url"`
	Position ImagePosition `json:"position" yaml:"position"`
}

// IsZero reports whether the customization carries no decoration.
func (c CardCustomization) IsZero() bool {
	return c.Image == nil && c.Subtitle == ""
}
