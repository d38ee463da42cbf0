package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProjectType represents the kind of project a repository is.
type ProjectType int

const (
	ProjectTypeApplication ProjectType = iota
	ProjectTypeLibrary
	ProjectTypeUniversity
	ProjectTypeOther
)

// projectTypeRank is the sort precedence of each project type. Lower ranks sort first.
var projectTypeRank = map[ProjectType]int{
	ProjectTypeApplication: 0,
	ProjectTypeLibrary:     1,
	ProjectTypeUniversity:  2,
	ProjectTypeOther:       3,
}

var projectTypeNames = map[ProjectType]string{
	ProjectTypeApplication: "Application",
	ProjectTypeLibrary:     "Library",
	ProjectTypeUniversity:  "University Project",
	ProjectTypeOther:       "Other",
}

// AllProjectTypes returns every project type in rank order.
func AllProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypeApplication,
		ProjectTypeLibrary,
		ProjectTypeUniversity,
		ProjectTypeOther,
	}
}

// IsValid checks if the project type is one of the known types
func (t ProjectType) IsValid() bool {
	_, ok := projectTypeNames[t]
	return ok
}

// Rank returns the sort precedence of the type. Unknown types rank after Other.
func (t ProjectType) Rank() int {
	if r, ok := projectTypeRank[t]; ok {
		return r
	}
	return len(projectTypeRank)
}

// String returns the display name of the project type
func (t ProjectType) String() string {
	if name, ok := projectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ProjectType(%d)", int(t))
}

// ParseProjectType parses a display name or topic keyword into a ProjectType.
func ParseProjectType(s string) (ProjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application", "app":
		return ProjectTypeApplication, nil
	case "library", "lib":
		return ProjectTypeLibrary, nil
	case "university project", "university", "uni":
		return ProjectTypeUniversity, nil
	case "other", "project":
		return ProjectTypeOther, nil
	default:
		return ProjectTypeOther, fmt.Errorf("invalid project type: %s (must be application, library, university, or other)", s)
	}
}

func (t ProjectType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid project type: %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ProjectType) UnmarshalText(text []byte) error {
	parsed, err := ParseProjectType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Project is one portfolio entry derived from a repository.
type Project struct {
	// Name is the display-formatted title
	Name string `json:"name"`

	// RepoName is the repository slug the project was built from
	RepoName string `json:"repoName"`

	Description string      `json:"description,omitempty"`
	Type        ProjectType `json:"type"`
	URL         string      `json:"url"`

	// Languages is ordered by byte count, largest first
	Languages []string `json:"languages"`

	Platforms  []string `json:"platforms"`
	Frameworks []string `json:"frameworks"`
	Skills     []string `json:"skills"`
}

// NewProject creates a Project with all list fields initialized to empty slices.
func NewProject(name, repoName, description, url string, projectType ProjectType) *Project {
	return &Project{
		Name:        name,
		RepoName:    repoName,
		Description: description,
		Type:        projectType,
		URL:         url,
		Languages:   []string{},
		Platforms:   []string{},
		Frameworks:  []string{},
		Skills:      []string{},
	}
}

// MarshalJSON keeps list fields as arrays even when they were left nil.
func (p Project) MarshalJSON() ([]byte, error) {
	type alias Project
	out := alias(p)
	out.Languages = nonNil(out.Languages)
	out.Platforms = nonNil(out.Platforms)
	out.Frameworks = nonNil(out.Frameworks)
	out.Skills = nonNil(out.Skills)
	return json.Marshal(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
