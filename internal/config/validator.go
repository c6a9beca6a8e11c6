package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError names one config value that failed validation
type FieldError struct {
	Field string
	Rule  string
}

// Repair resets every invalid field of cfg to its value in DefaultPlugin and
// returns the fields it reset. Valid fields are left alone.
func Repair(cfg *Plugin) []FieldError {
	problems := check(*cfg)
	if len(problems) == 0 {
		return nil
	}
	defaults := DefaultPlugin()
	dst := reflect.ValueOf(cfg).Elem()
	src := reflect.ValueOf(&defaults).Elem()
	for _, p := range problems {
		resetField(dst, src, p.Field)
	}
	return problems
}

// check lists invalid fields by their Go path below Plugin, e.g. Settings.Levels.BaseXP
func check(cfg Plugin) []FieldError {
	var problems []FieldError
	if err := getValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []FieldError{{Field: "Plugin", Rule: err.Error()}}
		}
		for _, e := range verrs {
			field := strings.TrimPrefix(e.StructNamespace(), "Plugin.")
			problems = append(problems, FieldError{Field: field, Rule: e.ActualTag()})
		}
	}

	switch cfg.Storage.Type {
	case StorageSQLite:
		if strings.TrimSpace(cfg.Storage.SQLite.Path) == "" {
			problems = append(problems, FieldError{Field: "Storage.SQLite.Path", Rule: "required"})
		}
	case StoragePostgres:
		if cfg.Storage.Postgres.Host == "" {
			problems = append(problems, FieldError{Field: "Storage.Postgres.Host", Rule: "required"})
		}
		if cfg.Storage.Postgres.Database == "" {
			problems = append(problems, FieldError{Field: "Storage.Postgres.Database", Rule: "required"})
		}
	}
	return problems
}

func resetField(dst, src reflect.Value, path string) {
	for _, name := range strings.Split(path, ".") {
		if dst.Kind() != reflect.Struct {
			return
		}
		dst = dst.FieldByName(name)
		src = src.FieldByName(name)
		if !dst.IsValid() || !src.IsValid() {
			return
		}
	}
	if dst.CanSet() {
		dst.Set(src)
	}
}

// ValidateEnv checks that the named environment variables are set
func ValidateEnv(required ...string) error {
	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
