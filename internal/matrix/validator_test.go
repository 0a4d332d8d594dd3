package matrix

import (
	"errors"
	"testing"

	"github.com/absolutejs/create-absolutejs/internal/compat"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

func TestValidate_GeneratedMatrix(t *testing.T) {
	t.Parallel()

	if err := Validate(Generate()); err != nil {
		t.Fatalf("Validate(Generate()) error = %v", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()

	if err := Validate(nil); !errors.Is(err, ErrEmptyMatrix) {
		t.Errorf("Validate(nil) error = %v, want ErrEmptyMatrix", err)
	}
	if err := Validate([]models.Configuration{}); !errors.Is(err, ErrEmptyMatrix) {
		t.Errorf("Validate([]) error = %v, want ErrEmptyMatrix", err)
	}
}

func TestValidate_InjectedInvalidEntry(t *testing.T) {
	t.Parallel()

	configs := Generate()
	const injectAt = 7
	bad := configs[injectAt]
	bad.ORM = models.ORMDrizzle
	bad.DatabaseEngine = models.EngineMongoDB
	bad.DatabaseHost = models.HostNone
	configs[injectAt] = bad

	err := Validate(configs)
	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("Validate() error = %v, want *EntryError", err)
	}
	if entryErr.Index != injectAt {
		t.Errorf("Index = %d, want %d", entryErr.Index, injectAt)
	}
	if entryErr.Field != "orm,databaseEngine" {
		t.Errorf("Field = %q, want %q", entryErr.Field, "orm,databaseEngine")
	}
	if !errors.Is(err, compat.ErrIncompatible) {
		t.Errorf("error %v does not wrap compat.ErrIncompatible", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	t.Parallel()

	valid := Generate()[0]

	tests := []struct {
		name      string
		mutate    func(*models.Configuration)
		wantField string
		wantErr   error
	}{
		{
			name:      "unknown frontend",
			mutate:    func(c *models.Configuration) { c.Frontend = "solid" },
			wantField: "frontend",
			wantErr:   compat.ErrUnknownValue,
		},
		{
			name:      "unknown host",
			mutate:    func(c *models.Configuration) { c.DatabaseHost = "supabase" },
			wantField: "databaseHost",
			wantErr:   compat.ErrUnknownValue,
		},
		{
			name:      "biome",
			mutate:    func(c *models.Configuration) { c.CodeQualityTool = models.QualityBiome },
			wantField: "codeQualityTool",
			wantErr:   ErrExcludedFeature,
		},
		{
			name: "prisma",
			mutate: func(c *models.Configuration) {
				c.DatabaseEngine = models.EnginePostgreSQL
				c.ORM = models.ORMPrisma
			},
			wantField: "orm",
			wantErr:   ErrExcludedFeature,
		},
		{
			name:      "angular",
			mutate:    func(c *models.Configuration) { c.Frontend = models.FrontendAngular },
			wantField: "frontend",
			wantErr:   ErrExcludedFeature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := valid
			tt.mutate(&c)
			err := Validate([]models.Configuration{valid, c})

			var entryErr *EntryError
			if !errors.As(err, &entryErr) {
				t.Fatalf("Validate() error = %v, want *EntryError", err)
			}
			if entryErr.Index != 1 {
				t.Errorf("Index = %d, want 1", entryErr.Index)
			}
			if entryErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", entryErr.Field, tt.wantField)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ExcludedFeatureIsAlsoUnimplemented(t *testing.T) {
	t.Parallel()

	c := Generate()[0]
	c.DatabaseEngine, c.ORM = models.EnginePostgreSQL, models.ORMPrisma
	err := Validate([]models.Configuration{c})
	if !errors.Is(err, ErrExcludedFeature) || !errors.Is(err, compat.ErrUnimplemented) {
		t.Errorf("Validate() error = %v, want ErrExcludedFeature wrapping compat.ErrUnimplemented", err)
	}
}
