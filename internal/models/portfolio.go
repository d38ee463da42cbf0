package models

// Portfolio is the document handed to the page-rendering layer after a build
type Portfolio struct {
	// Owner is the account login the projects were collated from
	Owner string `json:"owner"`

	// Tagline is the account bio (empty if the account has none)
	Tagline string `json:"tagline"`

	// Projects is sorted by type rank, then by listing order
	Projects []*Project `json:"projects"`

	// Facets holds the distinct filter values present in Projects
	Facets Facets `json:"facets"`
}

// NewPortfolio builds a Portfolio and computes its facets.
func NewPortfolio(owner, tagline string, projects []*Project) *Portfolio {
	if projects == nil {
		projects = []*Project{}
	}
	return &Portfolio{
		Owner:    owner,
		Tagline:  tagline,
		Projects: projects,
		Facets:   CollectFacets(projects),
	}
}

// Filtered returns a copy of the portfolio holding only the projects matching f.
// Facets are recomputed for the remaining projects.
func (p *Portfolio) Filtered(f ProjectFilter) *Portfolio {
	return NewPortfolio(p.Owner, p.Tagline, f.Apply(p.Projects))
}

// ProjectsByType groups projects by type, in rank order. Types without projects are omitted.
func (p *Portfolio) ProjectsByType() []ProjectGroup {
	groups := make([]ProjectGroup, 0, len(projectTypeRank))
	for _, t := range AllProjectTypes() {
		var members []*Project
		for _, project := range p.Projects {
			if project.Type == t {
				members = append(members, project)
			}
		}
		if len(members) > 0 {
			groups = append(groups, ProjectGroup{Type: t, Projects: members})
		}
	}
	return groups
}

// ProjectGroup is a set of projects sharing a type
type ProjectGroup struct {
	Type     ProjectType
	Projects []*Project
}
