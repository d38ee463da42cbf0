package categories

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jakoblorz/go-portfolio/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func newCategoryFS(t *testing.T, files map[string]string) *filesystem.MockFileSystem {
	t.Helper()

	mfs := filesystem.NewMockFileSystem()
	for path, content := range files {
		mfs.AddFile(path, []byte(content))
	}
	return mfs
}

func TestLoader_Load(t *testing.T) {
	mfs := newCategoryFS(t, map[string]string{
		"categories/platforms.json":   `{"ios": "iOS", "android": "Android", "linux": "Linux"}`,
		"categories/frameworks.json":  `{"jetpack-compose": "Jetpack Compose"}`,
		"categories/tech_skills.json": `{"unit-testing": "Unit Testing"}`,
	})

	set, err := NewLoader(mfs, "").Load()
	require.NoError(t, err)

	require.Equal(t, Table{"ios": "iOS", "android": "Android", "linux": "Linux"}, set.Platforms)
	require.Equal(t, Table{"jetpack-compose": "Jetpack Compose"}, set.Frameworks)
	require.Equal(t, Table{"unit-testing": "Unit Testing"}, set.Skills)

	name, ok := set.Platforms.Lookup("ios")
	require.True(t, ok)
	require.Equal(t, "iOS", name)

	_, ok = set.Platforms.Lookup("windows")
	require.False(t, ok)
}

func TestLoader_CustomDirAndYAML(t *testing.T) {
	mfs := newCategoryFS(t, map[string]string{
		"/data/cats/platforms.yaml":   "ios: iOS\nweb: Web\n",
		"/data/cats/frameworks.yml":   "react: React\n",
		"/data/cats/tech_skills.json": `{}`,
	})

	loader := NewLoader(mfs, "/data/cats")
	require.Equal(t, "/data/cats", loader.Dir())

	set, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, Table{"ios": "iOS", "web": "Web"}, set.Platforms)
	require.Equal(t, Table{"react": "React"}, set.Frameworks)
	require.Empty(t, set.Skills)
}

func TestLoader_JSONPreferredOverYAML(t *testing.T) {
	mfs := newCategoryFS(t, map[string]string{
		"categories/platforms.json": `{"ios": "iOS"}`,
		"categories/platforms.yaml": "ios: Apple iOS\n",
	})

	table, err := NewLoader(mfs, "").LoadTable(PlatformsResource)
	require.NoError(t, err)
	require.Equal(t, "iOS", table["ios"])
}

func TestLoader_MissingResource(t *testing.T) {
	mfs := newCategoryFS(t, map[string]string{
		"categories/platforms.json":  `{"ios": "iOS"}`,
		"categories/frameworks.json": `{}`,
	})

	_, err := NewLoader(mfs, "").Load()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, SkillsResource, cfgErr.Resource)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Contains(t, err.Error(), "tech_skills")
}

func TestLoader_MalformedResources(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"invalid json", "categories/platforms.json", `{"ios": `},
		{"array", "categories/platforms.json", `["ios", "android"]`},
		{"nested object", "categories/platforms.json", `{"ios": {"name": "iOS"}}`},
		{"number value", "categories/platforms.json", `{"ios": 1}`},
		{"null", "categories/platforms.json", `null`},
		{"empty", "categories/platforms.json", ``},
		{"nested yaml", "categories/platforms.yaml", "ios:\n  name: iOS\n"},
		{"yaml list", "categories/platforms.yaml", "- ios\n- android\n"},
		{"null json value", "categories/platforms.json", `{"ios": null}`},
		{"bool json value", "categories/platforms.json", `{"ios": true}`},
		{"yaml number value", "categories/platforms.yaml", "ios: 1\n"},
		{"yaml null value", "categories/platforms.yaml", "ios: ~\n"},
		{"yaml bool value", "categories/platforms.yaml", "linux: true\n"},
		{"yaml empty value", "categories/platforms.yaml", "android:\n"},
		{"yaml null document", "categories/platforms.yaml", "~\n"},
		{"yaml comment only", "categories/platforms.yaml", "# nothing here\n"},
		{"yaml scalar document", "categories/platforms.yaml", "ios\n"},
		{"yaml alias value", "categories/platforms.yaml", "ios: &name iOS\nipados: *name\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := newCategoryFS(t, map[string]string{tt.path: tt.content})

			_, err := NewLoader(mfs, "").LoadTable(PlatformsResource)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, PlatformsResource, cfgErr.Resource)
			require.Equal(t, tt.path, cfgErr.Path)
			require.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestLoader_YAMLQuotedScalars(t *testing.T) {
	mfs := newCategoryFS(t, map[string]string{
		"categories/platforms.yaml": "ios: iOS\nps5: \"5\"\nwatch: 'true'\n",
	})

	table, err := NewLoader(mfs, "").LoadTable(PlatformsResource)
	require.NoError(t, err)
	require.Equal(t, Table{"ios": "iOS", "ps5": "5", "watch": "true"}, table)
}
