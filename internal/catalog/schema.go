package catalog

import "strings"

// Schema selects which category table a Resolver uses.
type Schema string

const (
	// SchemaCurrent has twelve labelled categories and falls back to "general".
	SchemaCurrent Schema = "current"
	// SchemaLegacy is the earlier four-category table that falls back to
	// "uncategorized".
	SchemaLegacy Schema = "legacy"
)

// ParseSchema parses a schema name. The empty string selects SchemaCurrent.
func ParseSchema(s string) (Schema, error) {
	switch Schema(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemaCurrent:
		return SchemaCurrent, nil
	case SchemaLegacy:
		return SchemaLegacy, nil
	}
	return "", lookupError(KindSchema, s)
}

// UnmarshalText parses a schema name with ParseSchema.
func (s *Schema) UnmarshalText(text []byte) error {
	parsed, err := ParseSchema(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Resolver resolves category keys against one schema's table.
// A Resolver is immutable and safe to share.
type Resolver struct {
	schema     Schema
	ordered    []Category
	byKey      map[string]Category
	defaultCat Category
}

// NewResolver returns a resolver for schema. Unknown schemas resolve as
// SchemaCurrent.
func NewResolver(schema Schema) *Resolver {
	table, def := currentCategories, DefaultCategory
	if schema == SchemaLegacy {
		table, def = legacyCategories, legacyDefault
	} else {
		schema = SchemaCurrent
	}

	r := &Resolver{
		schema:     schema,
		ordered:    table,
		byKey:      make(map[string]Category, len(table)),
		defaultCat: def,
	}
	for _, c := range table {
		r.byKey[c.Key] = c
	}
	return r
}

// Schema returns the schema the resolver was built for.
func (r *Resolver) Schema() Schema {
	return r.schema
}

// Resolve returns the descriptor registered for key, or the schema default.
func (r *Resolver) Resolve(key string) Category {
	if c, ok := r.byKey[key]; ok {
		return c
	}
	return r.defaultCat
}

// Known reports whether key is a member of the table. The default key is not.
func (r *Resolver) Known(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Default returns the fallback descriptor.
func (r *Resolver) Default() Category {
	return r.defaultCat
}

// Categories returns a copy of the table in display order.
func (r *Resolver) Categories() []Category {
	out := make([]Category, len(r.ordered))
	copy(out, r.ordered)
	return out
}
