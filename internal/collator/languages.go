package collator

import (
	"sort"
	"strings"
)

// excludedLanguages are build tooling, not languages a project is written in
var excludedLanguages = []string{"Makefile", "Dockerfile"}

// ReduceLanguages turns a language breakdown into display names, largest share
// first with ties broken by name.
func ReduceLanguages(breakdown map[string]int) []string {
	type entry struct {
		name  string
		bytes int
	}

	entries := make([]entry, 0, len(breakdown))
	for name, bytes := range breakdown {
		if isExcludedLanguage(name) {
			continue
		}
		entries = append(entries, entry{name: name, bytes: bytes})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].bytes != entries[j].bytes {
			return entries[i].bytes > entries[j].bytes
		}
		return entries[i].name < entries[j].name
	})

	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, upperFirst(e.name))
	}
	return result
}

func isExcludedLanguage(name string) bool {
	for _, excluded := range excludedLanguages {
		if strings.EqualFold(name, excluded) {
			return true
		}
	}
	return false
}
