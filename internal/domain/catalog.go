package domain

// CatalogItem is one selectable equipment item for the basic tier.
type CatalogItem struct {
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
}

// DefaultCatalog returns the built-in equipment item catalog. Deployments
// can replace it via the catalog config file; the engine itself never
// depends on catalog content.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{Slug: "dumbbell", Label: "Dumbbell"},
		{Slug: "barbell", Label: "Barbell"},
		{Slug: "kettlebell", Label: "Kettlebell"},
		{Slug: "resistance-bands", Label: "Resistance Bands"},
		{Slug: "pull-up-bar", Label: "Pull-up Bar"},
		{Slug: "bench", Label: "Bench"},
		{Slug: "yoga-mat", Label: "Yoga Mat"},
	}
}
