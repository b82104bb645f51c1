package newswire

import "context"

// Entity is a single span of text labeled by an entity model.
type Entity struct {
	Text  string
	Label string
}

// EntityModel analyzes text and returns labeled entity spans.
// Implementations may call remote services; results are best-effort and
// callers must tolerate total failure of the model.
type EntityModel interface {
	Analyze(ctx context.Context, text string) ([]Entity, error)
}

// EntityClass is a canonical entity category.
type EntityClass string

// Canonical entity categories.
const (
	ClassPerson       EntityClass = "persons"
	ClassOrganization EntityClass = "organizations"
	ClassLocation     EntityClass = "locations"
)

// LabelTable maps model-native entity labels to canonical classes.
// Labels absent from the table are discarded.
type LabelTable map[string]EntityClass

// DefaultLabelTable covers the label schemes of the bundled entity models.
func DefaultLabelTable() LabelTable {
	return LabelTable{
		"PERSON":       ClassPerson,
		"PERSONAGE":    ClassPerson,
		"ORG":          ClassOrganization,
		"ORGANIZATION": ClassOrganization,
		"LOC":          ClassLocation,
		"GPE":          ClassLocation,
		"LOCATION":     ClassLocation,
	}
}

// Bundle groups categorized named entities for one article. Each category
// is deduplicated and ordered by first appearance in the source text.
type Bundle struct {
	Persons       []string
	Organizations []string
	Locations     []string
}

// BuildBundle categorizes entity spans through the label table. Within each
// class, duplicates are removed and first-seen order is preserved. The
// returned slices are never nil.
func BuildBundle(entities []Entity, table LabelTable) Bundle {
	b := Bundle{
		Persons:       []string{},
		Organizations: []string{},
		Locations:     []string{},
	}
	seen := map[EntityClass]map[string]struct{}{
		ClassPerson:       {},
		ClassOrganization: {},
		ClassLocation:     {},
	}
	for _, ent := range entities {
		class, ok := table[ent.Label]
		if !ok {
			continue
		}
		if _, dup := seen[class][ent.Text]; dup {
			continue
		}
		seen[class][ent.Text] = struct{}{}
		switch class {
		case ClassPerson:
			b.Persons = append(b.Persons, ent.Text)
		case ClassOrganization:
			b.Organizations = append(b.Organizations, ent.Text)
		case ClassLocation:
			b.Locations = append(b.Locations, ent.Text)
		}
	}
	return b
}
