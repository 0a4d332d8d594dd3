package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/absolutejs/create-absolutejs/internal/compat"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// excludedFeature is a value that must never appear in a matrix, whatever
// the compatibility rules say.
type excludedFeature struct {
	field string
	value string
	get   func(models.Configuration) string
}

// excludedFeatures are the explicit spot checks for unimplemented features.
var excludedFeatures = []excludedFeature{
	{"orm", string(models.ORMPrisma), func(c models.Configuration) string { return string(c.ORM) }},
	{"codeQualityTool", string(models.QualityBiome), func(c models.Configuration) string { return string(c.CodeQualityTool) }},
	{"frontend", string(models.FrontendAngular), func(c models.Configuration) string { return string(c.Frontend) }},
}

// Validate re-checks every configuration and fails on the first problem:
// a value outside its domain, an excluded feature, or a compatibility rule
// violation. Excluded features are spot-checked before the rules so they
// are reported as such even though the rules reject them too. An empty
// matrix is always an error.
func Validate(configs []models.Configuration) error {
	if len(configs) == 0 {
		return ErrEmptyMatrix
	}

	for i, c := range configs {
		if err := validateDomains(i, c); err != nil {
			return err
		}
		for _, ex := range excludedFeatures {
			if ex.get(c) == ex.value {
				err := fmt.Errorf("%w: %w", ErrExcludedFeature, compat.ErrUnimplemented)
				return &EntryError{Index: i, Field: ex.field, Value: ex.value, Err: err}
			}
		}
		if err := compat.Check(c); err != nil {
			return ruleEntryError(i, c, err)
		}
	}
	return nil
}

// validateDomains checks each field against its enum domain.
func validateDomains(i int, c models.Configuration) error {
	checks := []struct {
		field string
		value string
		ok    bool
	}{
		{"frontend", string(c.Frontend), c.Frontend.IsValid()},
		{"databaseEngine", string(c.DatabaseEngine), c.DatabaseEngine.IsValid()},
		{"orm", string(c.ORM), c.ORM.IsValid()},
		{"databaseHost", string(c.DatabaseHost), c.DatabaseHost.IsValid()},
		{"authProvider", string(c.AuthProvider), c.AuthProvider.IsValid()},
		{"codeQualityTool", string(c.CodeQualityTool), c.CodeQualityTool.IsValid()},
		{"directoryConfig", string(c.DirectoryConfig), c.DirectoryConfig.IsValid()},
	}
	for _, chk := range checks {
		if !chk.ok {
			return &EntryError{Index: i, Field: chk.field, Value: chk.value, Err: compat.ErrUnknownValue}
		}
	}
	return nil
}

// ruleEntryError attaches the index and the violated fields to a rule error.
func ruleEntryError(i int, c models.Configuration, err error) error {
	entry := &EntryError{Index: i, Err: err}
	var v *compat.RuleViolation
	if errors.As(err, &v) {
		entry.Field = strings.Join(v.Fields, ",")
		entry.Value = fieldValue(c, v.Fields[0])
	}
	return entry
}

func fieldValue(c models.Configuration, field string) string {
	switch field {
	case "frontend":
		return string(c.Frontend)
	case "databaseEngine":
		return string(c.DatabaseEngine)
	case "orm":
		return string(c.ORM)
	case "databaseHost":
		return string(c.DatabaseHost)
	case "authProvider":
		return string(c.AuthProvider)
	case "codeQualityTool":
		return string(c.CodeQualityTool)
	case "directoryConfig":
		return string(c.DirectoryConfig)
	}
	return ""
}
