package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	itemIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			return itemIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return pageerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seenTabs := make(map[string]struct{}, len(cfg.Tabs))
	for i, tab := range cfg.Tabs {
		if _, exists := seenTabs[tab.ID]; exists {
			return pageerrors.NewValidationError(fieldForItem("tabs", i, "id"), fmt.Sprintf("duplicate tab id %q", tab.ID), nil)
		}
		seenTabs[tab.ID] = struct{}{}
	}

	seenFAQ := make(map[string]struct{}, len(cfg.FAQ))
	for i, item := range cfg.FAQ {
		if _, exists := seenFAQ[item.ID]; exists {
			return pageerrors.NewValidationError(fieldForItem("faq", i, "id"), fmt.Sprintf("duplicate faq id %q", item.ID), nil)
		}
		seenFAQ[item.ID] = struct{}{}
	}

	return nil
}
