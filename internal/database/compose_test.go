package database

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

func TestNewComposeFile(t *testing.T) {
	t.Parallel()

	for _, engine := range models.AllDatabaseEngines() {
		if engine == models.EngineNone || engine == models.EngineSQLite {
			continue
		}
		t.Run(string(engine), func(t *testing.T) {
			t.Parallel()

			c, err := NewComposeFile(engine)
			if err != nil {
				t.Fatalf("NewComposeFile() error = %v", err)
			}
			svc, ok := c.Services[container.DatabaseService]
			if !ok || len(c.Services) != 1 {
				t.Fatalf("services = %v, want only %q", c.Services, container.DatabaseService)
			}
			if svc.Image == "" || len(svc.Ports) != 1 || svc.Healthcheck == nil {
				t.Errorf("incomplete service: %+v", svc)
			}
			if _, ok := c.Volumes[string(engine)+"_data"]; !ok {
				t.Errorf("volume for %s missing: %v", engine, c.Volumes)
			}
		})
	}
}

func TestNewComposeFileUnsupported(t *testing.T) {
	t.Parallel()

	for _, engine := range []models.DatabaseEngine{models.EngineSQLite, models.EngineNone} {
		if _, err := NewComposeFile(engine); !errors.Is(err, ErrUnsupportedEngine) {
			t.Errorf("NewComposeFile(%s) error = %v, want ErrUnsupportedEngine", engine, err)
		}
	}
}

func TestComposeFileMarshal(t *testing.T) {
	t.Parallel()

	c, err := NewComposeFile(models.EnginePostgreSQL)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "services:\n  db:\n") {
		t.Errorf("unexpected layout:\n%s", out)
	}

	again, err := c.Marshal()
	if err != nil || string(again) != string(out) {
		t.Error("Marshal() is not deterministic")
	}

	var decoded ComposeFile
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	db := decoded.Services[container.DatabaseService]
	if db.Image != "postgres:17-alpine" {
		t.Errorf("image = %q", db.Image)
	}
	if db.Environment["POSTGRES_DB"] != "database" {
		t.Errorf("environment = %v", db.Environment)
	}
	if len(db.Ports) != 1 || db.Ports[0] != "5432:5432" {
		t.Errorf("ports = %v", db.Ports)
	}
}
