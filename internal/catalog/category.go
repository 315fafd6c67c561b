package catalog

// IconName names an icon in the front-end icon set (e.g. "Briefcase").
type IconName string

// ColorName names a palette colour (e.g. "blue", "emerald").
type ColorName string

// Category describes how goals of one category are presented.
type Category struct {
	Key   string    `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
	Icon  IconName  `json:"icon" yaml:"icon"`
	Color ColorName `json:"color" yaml:"color"`
}

// Category keys of the current schema.
const (
	CategoryCareer    = "career"
	CategoryEducation = "education"
	CategoryHealth    = "health"
	CategoryPersonal  = "personal"
	CategoryGrowth    = "growth"
	CategoryFamily    = "family"
	CategoryFinancial = "financial"
	CategoryCreative  = "creative"
	CategoryTravel    = "travel"
	CategorySocial    = "social"
	CategorySpiritual = "spiritual"
	CategorySkills    = "skills"
)

// Default category keys. Neither is ever a member of its own table.
const (
	GeneralKey       = "general"
	UncategorizedKey = "uncategorized"
)

// DefaultCategory is returned for any key the current schema does not know.
var DefaultCategory = Category{
	Key:   GeneralKey,
	Label: "General Goals",
	Icon:  "ListTodo",
	Color: "gray",
}

var currentCategories = []Category{
	{Key: CategoryCareer, Label: "Career & Professional", Icon: "Briefcase", Color: "blue"},
	{Key: CategoryEducation, Label: "Education & Learning", Icon: "GraduationCap", Color: "yellow"},
	{Key: CategoryHealth, Label: "Health & Wellness", Icon: "Heart", Color: "red"},
	{Key: CategoryPersonal, Label: "Personal Life", Icon: "User", Color: "purple"},
	{Key: CategoryGrowth, Label: "Personal Growth", Icon: "Sprout", Color: "green"},
	{Key: CategoryFamily, Label: "Family & Relationships", Icon: "Users", Color: "pink"},
	{Key: CategoryFinancial, Label: "Financial Goals", Icon: "DollarSign", Color: "emerald"},
	{Key: CategoryCreative, Label: "Creative Projects", Icon: "Palette", Color: "orange"},
	{Key: CategoryTravel, Label: "Travel & Adventure", Icon: "Plane", Color: "sky"},
	{Key: CategorySocial, Label: "Social & Community", Icon: "Users2", Color: "indigo"},
	{Key: CategorySpiritual, Label: "Spiritual & Mindfulness", Icon: "Lotus", Color: "violet"},
	{Key: CategorySkills, Label: "Skills & Hobbies", Icon: "Trophy", Color: "amber"},
}

var legacyDefault = Category{
	Key:   UncategorizedKey,
	Label: "Uncategorized",
	Icon:  "List",
	Color: "gray",
}

// The legacy schema only carried icon and colour; labels are the short form.
var legacyCategories = []Category{
	{Key: CategoryCareer, Label: "Career", Icon: "Briefcase", Color: "blue"},
	{Key: CategoryHealth, Label: "Health", Icon: "Heart", Color: "red"},
	{Key: CategoryPersonal, Label: "Personal", Icon: "User", Color: "green"},
	{Key: CategoryFinancial, Label: "Financial", Icon: "DollarSign", Color: "yellow"},
}

var current = NewResolver(SchemaCurrent)

// ResolveCategory returns the current-schema descriptor for key, or
// DefaultCategory when the key is unknown. It never fails.
func ResolveCategory(key string) Category {
	return current.Resolve(key)
}

// Categories returns the current category table in display order.
func Categories() []Category {
	return current.Categories()
}

// CategoryKeys returns the current category keys in display order.
func CategoryKeys() []string {
	keys := make([]string, len(currentCategories))
	for i, c := range currentCategories {
		keys[i] = c.Key
	}
	return keys
}

// MigrateCategoryKey maps the legacy default key onto the current one.
// Every other key is returned unchanged.
func MigrateCategoryKey(key string) string {
	if key == UncategorizedKey {
		return GeneralKey
	}
	return key
}
