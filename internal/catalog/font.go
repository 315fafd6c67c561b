package catalog

import "strings"

// FontFamily identifies one of the built-in typographic styles.
type FontFamily string

const (
	FontInter       FontFamily = "inter"
	FontCal         FontFamily = "cal"
	FontMono        FontFamily = "mono"
	FontHeading     FontFamily = "heading"
	FontHandwriting FontFamily = "handwriting"
)

// Font describes a typeface and the style class that applies it.
type Font struct {
	Key    FontFamily `json:"key" yaml:"key"`
	Name   string     `json:"name" yaml:"name"`
	Family string     `json:"family" yaml:"family"`
	Style  string     `json:"style" yaml:"style"`
}

var fontOrder = [...]FontFamily{FontInter, FontCal, FontMono, FontHeading, FontHandwriting}

var fonts = map[FontFamily]Font{
	FontInter:       {Key: FontInter, Name: "Inter", Family: "Inter", Style: "font-sans"},
	FontCal:         {Key: FontCal, Name: "Cal Sans", Family: "Cal Sans", Style: "font-cal"},
	FontMono:        {Key: FontMono, Name: "Monospace", Family: "JetBrains Mono", Style: "font-mono"},
	FontHeading:     {Key: FontHeading, Name: "Heading", Family: "Lexend", Style: "font-heading"},
	FontHandwriting: {Key: FontHandwriting, Name: "Handwriting", Family: "Caveat", Style: "font-handwriting"},
}

// DefaultFontFamily is used when no font is configured.
const DefaultFontFamily = FontInter

// Valid reports whether f is one of the built-in fonts.
func (f FontFamily) Valid() bool {
	_, ok := fonts[f]
	return ok
}

func (f FontFamily) String() string {
	return string(f)
}

// UnmarshalText rejects keys outside the enumeration.
func (f *FontFamily) UnmarshalText(text []byte) error {
	parsed, err := ParseFontFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Next returns the font after f in display order, wrapping around.
func (f FontFamily) Next() FontFamily {
	for i, ff := range fontOrder {
		if ff == f {
			return fontOrder[(i+1)%len(fontOrder)]
		}
	}
	return fontOrder[0]
}

// ParseFontFamily parses a font key, ignoring case and surrounding whitespace.
func ParseFontFamily(s string) (FontFamily, error) {
	f := FontFamily(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", lookupError(KindFont, s)
	}
	return f, nil
}

// ResolveFont returns the descriptor for f. Like ResolveTheme it panics with a
// *ConfigLookupError for values outside the enumeration.
func ResolveFont(f FontFamily) Font {
	font, ok := fonts[f]
	if !ok {
		panic(lookupError(KindFont, string(f)))
	}
	return font
}

// LookupFont parses s and resolves it.
func LookupFont(s string) (Font, error) {
	f, err := ParseFontFamily(s)
	if err != nil {
		return Font{}, err
	}
	return fonts[f], nil
}

// FontFamilies returns every font key in display order.
func FontFamilies() []FontFamily {
	return append([]FontFamily(nil), fontOrder[:]...)
}

// Fonts returns every font descriptor in display order.
func Fonts() []Font {
	out := make([]Font, 0, len(fontOrder))
	for _, f := range fontOrder {
		out = append(out, fonts[f])
	}
	return out
}
