// Package catalog holds the static presentation tables for goalboard and the
// functions that resolve loosely-typed keys against them.
//
// Categories are keyed by arbitrary strings and always resolve: an unknown or
// legacy key yields the schema's default descriptor. Themes and fonts are
// closed enumerations; raw strings are parsed once at the boundary with
// ParseThemeColor / ParseFontFamily (or LookupTheme / LookupFont) and fail
// with a *ConfigLookupError naming the key.
//
//	cat := catalog.ResolveCategory(goal.Category)
//	th := catalog.ResolveTheme(catalog.ThemePurple)
//	f, err := catalog.LookupFont(cfg.Font)
//	if err != nil {
//		return err
//	}
package catalog
