package template

// The registry replaces the one-component-per-template sprawl with a catalog
// of layout descriptors rendered by shared primitives (layout.go). Adding a
// template means adding a descriptor, not a new rendering function.

// Header styles understood by the layout renderer.
const (
	HeaderPlain     = "plain"
	HeaderBanner    = "banner"
	HeaderUnderline = "underline"
)

// LayoutSpec describes how a template arranges the document. Section keys:
// experience, education, projects, skills, achievements. Custom sections
// always follow the main column.
type LayoutSpec struct {
	Columns           int
	Header            string
	Sidebar           []string
	Main              []string
	UppercaseHeadings bool
}

// Descriptor is one catalog entry: identity, browsing metadata and layout.
// Downloads is in thousands, matching the catalog's "12K+" tiers.
type Descriptor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Categories   []string   `json:"categories"`
	Rating       float64    `json:"rating"`
	Downloads    int        `json:"downloads"`
	ATSOptimized bool       `json:"atsOptimized"`
	Layout       LayoutSpec `json:"-"`
}

// DefaultTemplateID is the fail-closed fallback for unknown template ids.
const DefaultTemplateID = "cosmos"

type Registry struct {
	order []string
	byID  map[string]Descriptor
}

func (r *Registry) add(d Descriptor) {
	r.order = append(r.order, d.ID)
	r.byID[d.ID] = d
}

// Get looks up a descriptor by id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Resolve looks up a descriptor, falling back to the default template when
// the id is unknown. The renderer never fails on a bad template id.
func (r *Registry) Resolve(id string) Descriptor {
	if d, ok := r.byID[id]; ok {
		return d
	}
	return r.byID[DefaultTemplateID]
}

// List returns all descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

var allSections = []string{"experience", "education", "projects", "skills", "achievements"}

// NewRegistry builds the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{byID: map[string]Descriptor{}}

	r.add(Descriptor{
		ID: "galaxy", Name: "Galaxy",
		Categories: []string{"photo", "professional", "modern"},
		Rating:     4.9, Downloads: 15, ATSOptimized: false,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderBanner,
			Sidebar: []string{"skills", "education"},
			Main:    []string{"experience", "projects", "achievements"},
		},
	})
	r.add(Descriptor{
		ID: "cosmos", Name: "Cosmos",
		Categories: []string{"professional", "ats", "simple"},
		Rating:     4.9, Downloads: 12, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 1, Header: HeaderPlain,
			Main:              allSections,
			UppercaseHeadings: true,
		},
	})
	r.add(Descriptor{
		ID: "pulsar", Name: "Pulsar",
		Categories: []string{"simple", "ats", "professional"},
		Rating:     4.8, Downloads: 11, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 1, Header: HeaderUnderline,
			Main: allSections,
		},
	})
	r.add(Descriptor{
		ID: "lunar", Name: "Lunar",
		Categories: []string{"professional", "modern"},
		Rating:     4.8, Downloads: 9, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderUnderline,
			Sidebar: []string{"skills", "achievements"},
			Main:    []string{"experience", "education", "projects"},
		},
	})
	r.add(Descriptor{
		ID: "aurora", Name: "Aurora",
		Categories: []string{"modern", "professional"},
		Rating:     4.7, Downloads: 8, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 1, Header: HeaderBanner,
			Main: allSections,
		},
	})
	r.add(Descriptor{
		ID: "eclipse", Name: "Eclipse",
		Categories: []string{"photo", "simple"},
		Rating:     4.7, Downloads: 7, ATSOptimized: false,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderPlain,
			Sidebar: []string{"education", "skills"},
			Main:    []string{"experience", "projects", "achievements"},
		},
	})
	r.add(Descriptor{
		ID: "nebula", Name: "Nebula",
		Categories: []string{"modern", "professional"},
		Rating:     4.6, Downloads: 6, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderBanner,
			Sidebar:           []string{"skills"},
			Main:              []string{"experience", "projects", "education", "achievements"},
			UppercaseHeadings: true,
		},
	})
	r.add(Descriptor{
		ID: "solstice", Name: "Solstice",
		Categories: []string{"simple", "ats"},
		Rating:     4.6, Downloads: 10, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 1, Header: HeaderPlain,
			Main: []string{"experience", "projects", "education", "skills", "achievements"},
		},
	})
	r.add(Descriptor{
		ID: "comet", Name: "Comet",
		Categories: []string{"modern", "photo"},
		Rating:     4.5, Downloads: 4, ATSOptimized: false,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderUnderline,
			Sidebar: []string{"skills", "projects"},
			Main:    []string{"experience", "education", "achievements"},
		},
	})
	r.add(Descriptor{
		ID: "celestial", Name: "Celestial",
		Categories: []string{"ats", "simple", "professional"},
		Rating:     4.7, Downloads: 10, ATSOptimized: true,
		Layout: LayoutSpec{
			Columns: 1, Header: HeaderUnderline,
			Main:              allSections,
			UppercaseHeadings: true,
		},
	})
	r.add(Descriptor{
		ID: "astral", Name: "Astral",
		Categories: []string{"photo", "modern"},
		Rating:     4.5, Downloads: 3, ATSOptimized: false,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderBanner,
			Sidebar: []string{"education", "skills", "achievements"},
			Main:    []string{"experience", "projects"},
		},
	})
	r.add(Descriptor{
		ID: "astralis", Name: "Astralis",
		Categories: []string{"modern", "photo"},
		Rating:     4.4, Downloads: 2, ATSOptimized: false,
		Layout: LayoutSpec{
			Columns: 2, Header: HeaderPlain,
			Sidebar:           []string{"skills", "education"},
			Main:              []string{"experience", "projects", "achievements"},
			UppercaseHeadings: true,
		},
	})

	return r
}
