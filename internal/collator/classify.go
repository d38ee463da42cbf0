package collator

import (
	"github.com/jakoblorz/go-portfolio/internal/categories"
	"github.com/jakoblorz/go-portfolio/internal/models"
)

// typeTopics maps the topic tags that decide a project's type
var typeTopics = map[string]models.ProjectType{
	"app":         models.ProjectTypeApplication,
	"application": models.ProjectTypeApplication,
	"library":     models.ProjectTypeLibrary,
	"university":  models.ProjectTypeUniversity,
}

// Classification is the result of scanning a repository's topics
type Classification struct {
	Type       models.ProjectType
	Platforms  []string
	Frameworks []string
	Skills     []string
}

// Classify scans topics once, in order. The last type tag wins; a tag may also
// land in several category lists. Tags matching nothing are ignored.
func Classify(topics []string, cats *categories.Set) Classification {
	c := Classification{
		Type:       models.ProjectTypeOther,
		Platforms:  []string{},
		Frameworks: []string{},
		Skills:     []string{},
	}
	if cats == nil {
		cats = &categories.Set{}
	}

	for _, topic := range topics {
		if t, ok := typeTopics[topic]; ok {
			c.Type = t
		}
		if name, ok := cats.Platforms.Lookup(topic); ok {
			c.Platforms = append(c.Platforms, name)
		}
		if name, ok := cats.Frameworks.Lookup(topic); ok {
			c.Frameworks = append(c.Frameworks, name)
		}
		if name, ok := cats.Skills.Lookup(topic); ok {
			c.Skills = append(c.Skills, name)
		}
	}

	return c
}
