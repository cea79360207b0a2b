package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagekit/internal/page"
	"github.com/alexisbeaulieu97/pagekit/internal/validation"
	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
title: "Demo"
tabs:
  - id: getting_started
    content: "Hello"
faq:
  - id: q1
    question: "Why?"
    answer: "Because."
`

	invalidYAML := `version: [1, 0]
title: "Broken"
`

	missingTabs := `version: "1.0"
title: "No Tabs"
`

	badVersion := `version: "beta"
title: "Bad Version"
tabs:
  - id: a
    content: "x"
`

	badTheme := `version: "1.0"
title: "Sepia"
theme: sepia
tabs:
  - id: a
    content: "x"
`

	goalOutOfRange := `version: "1.0"
title: "Goal"
counter:
  goal: 5000
tabs:
  - id: a
    content: "x"
`

	duplicateTabs := `version: "1.0"
title: "Dupes"
tabs:
  - id: a
    content: "x"
  - id: a
    content: "y"
`

	duplicateFAQ := `version: "1.0"
title: "Dupes"
tabs:
  - id: a
    content: "x"
faq:
  - id: q
    question: "1"
    answer: "1"
  - id: q
    question: "2"
    answer: "2"
`

	badTabID := `version: "1.0"
title: "IDs"
tabs:
  - id: "Has Spaces"
    content: "x"
`

	cases := []struct {
		name   string
		body   string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration is parsed with defaults",
			body: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "Demo", cfg.Title)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, DefaultCounterGoal, cfg.Counter.Goal)
				require.Equal(t, DefaultMessage, cfg.Message)
				require.Equal(t, validation.DefaultSuccessMessage, cfg.Messages.Success)
				require.Equal(t, "Getting Started", cfg.Tabs[0].Label)
				require.Equal(t, []string{"getting_started"}, cfg.TabIDs())
				require.Equal(t, []string{"q1"}, cfg.FAQIDs())
			},
		},
		{
			name: "invalid yaml returns parse error",
			body: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *pageerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:   "missing tabs returns validation error",
			body:   missingTabs,
			assert: requireValidationError("tabs"),
		},
		{
			name:   "schema version must follow major.minor",
			body:   badVersion,
			assert: requireValidationError("version"),
		},
		{
			name:   "theme must be dark or light",
			body:   badTheme,
			assert: requireValidationError("theme"),
		},
		{
			name:   "counter goal is bounded",
			body:   goalOutOfRange,
			assert: requireValidationError("counter.goal"),
		},
		{
			name:   "tab ids are unique",
			body:   duplicateTabs,
			assert: requireValidationError("tabs[1].id"),
		},
		{
			name:   "faq ids are unique",
			body:   duplicateFAQ,
			assert: requireValidationError("faq[1].id"),
		},
		{
			name:   "tab ids use lowercase slugs",
			body:   badTabID,
			assert: requireValidationError("tabs[0].id"),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.body)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *pageerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	require.NoError(t, err)

	want := []Tab{
		{ID: "html", Label: "HTML"},
		{ID: "css", Label: "CSS"},
		{ID: "js", Label: "JavaScript"},
	}
	got := make([]Tab, 0, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		require.NotEmpty(t, tab.Content)
		got = append(got, Tab{ID: tab.ID, Label: tab.Label})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("default tabs mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, page.ThemeDark, cfg.PageTheme())
	require.Equal(t, 10, cfg.Counter.Goal)
	require.Len(t, cfg.FAQ, 3)
	require.Equal(t, validation.DefaultSuccessMessage, cfg.Messages.Success)
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Parallel()

	fromLoad, err := Load("  ")
	require.NoError(t, err)
	fromDefault, err := Default()
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(fromDefault, fromLoad))

	path := writeTempConfig(t, "version: \"1.0\"\ntitle: \"File\"\ntheme: light\ntabs:\n  - id: a\n    content: x\n")
	fromFile, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "File", fromFile.Title)
	require.Equal(t, page.ThemeLight, fromFile.PageTheme())
}

func TestDefaultYAMLReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultYAML()
	first[0] = '#'
	require.NotEqual(t, first[0], DefaultYAML()[0])
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *pageerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestPageThemeFallsBackToDark(t *testing.T) {
	t.Parallel()

	var nilCfg *Config
	require.Equal(t, page.ThemeDark, nilCfg.PageTheme())
	require.Equal(t, page.ThemeDark, (&Config{Theme: "neon"}).PageTheme())
}

func requireValidationError(field string) func(t *testing.T, cfg *Config, err error) {
	return func(t *testing.T, cfg *Config, err error) {
		t.Helper()
		require.Nil(t, cfg)
		var validationErr *pageerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, field, validationErr.Field)
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
