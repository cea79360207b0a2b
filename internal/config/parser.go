package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/pagekit/internal/validation"
	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

const (
	// DefaultCounterGoal is the counter value that unlocks the win hint.
	DefaultCounterGoal = 10
	// DefaultMessage is the text revealed by the message toggle.
	DefaultMessage = "You clicked the button! 🎉"
	// DefaultSource names the embedded configuration in errors.
	DefaultSource = "<default>"
)

//go:embed default.yaml
var defaultYAML []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultYAML returns the embedded default page configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default parses the embedded default page configuration.
func Default() (*Config, error) {
	return Parse(defaultYAML, DefaultSource)
}

// Load returns the configuration at path, or the embedded default when path is empty.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pageerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes data, fills defaults and validates the result. source names
// the document in errors.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, pageerrors.NewParseError(source, extractLine(err), err)
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = "dark"
	}
	if cfg.Counter.Goal == 0 {
		cfg.Counter.Goal = DefaultCounterGoal
	}
	if strings.TrimSpace(cfg.Message) == "" {
		cfg.Message = DefaultMessage
	}
	if strings.TrimSpace(cfg.Messages.Success) == "" {
		cfg.Messages.Success = validation.DefaultSuccessMessage
	}

	title := cases.Title(language.English)
	for i := range cfg.Tabs {
		if strings.TrimSpace(cfg.Tabs[i].Label) == "" {
			cfg.Tabs[i].Label = title.String(strings.NewReplacer("-", " ", "_", " ").Replace(cfg.Tabs[i].ID))
		}
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
