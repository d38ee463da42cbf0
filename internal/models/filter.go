package models

import "slices"

// ProjectFilter selects projects by type, language, platform, framework and skill.
// Empty fields match everything; set fields are combined with AND logic.
type ProjectFilter struct {
	Type      *ProjectType
	Language  string
	Platform  string
	Framework string
	Skill     string
}

// IsEmpty reports whether the filter matches every project
func (f ProjectFilter) IsEmpty() bool {
	return f.Type == nil && f.Language == "" && f.Platform == "" && f.Framework == "" && f.Skill == ""
}

// Matches checks if a project satisfies every set field of the filter
func (f ProjectFilter) Matches(p *Project) bool {
	if p == nil {
		return false
	}
	if f.Type != nil && p.Type != *f.Type {
		return false
	}
	if f.Language != "" && !slices.Contains(p.Languages, f.Language) {
		return false
	}
	if f.Platform != "" && !slices.Contains(p.Platforms, f.Platform) {
		return false
	}
	if f.Framework != "" && !slices.Contains(p.Frameworks, f.Framework) {
		return false
	}
	if f.Skill != "" && !slices.Contains(p.Skills, f.Skill) {
		return false
	}
	return true
}

// Apply returns the matching projects, preserving order
func (f ProjectFilter) Apply(projects []*Project) []*Project {
	if f.IsEmpty() {
		return projects
	}

	filtered := make([]*Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Facets lists the distinct values present on each filter axis.
type Facets struct {
	Types      []ProjectType `json:"types"`
	Languages  []string      `json:"languages"`
	Platforms  []string      `json:"platforms"`
	Frameworks []string      `json:"frameworks"`
	Skills     []string      `json:"skills"`
}

// CollectFacets gathers distinct facet values in first-seen order.
func CollectFacets(projects []*Project) Facets {
	facets := Facets{
		Types:      []ProjectType{},
		Languages:  []string{},
		Platforms:  []string{},
		Frameworks: []string{},
		Skills:     []string{},
	}

	for _, p := range projects {
		if p == nil {
			continue
		}
		if !slices.Contains(facets.Types, p.Type) {
			facets.Types = append(facets.Types, p.Type)
		}
		facets.Languages = appendDistinct(facets.Languages, p.Languages)
		facets.Platforms = appendDistinct(facets.Platforms, p.Platforms)
		facets.Frameworks = appendDistinct(facets.Frameworks, p.Frameworks)
		facets.Skills = appendDistinct(facets.Skills, p.Skills)
	}

	return facets
}

func appendDistinct(dst, values []string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
