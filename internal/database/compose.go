package database

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// ComposeFile is the subset of the Compose file format the generator emits.
type ComposeFile struct {
	Services map[string]ComposeService `yaml:"services"`
	Volumes  map[string]ComposeVolume  `yaml:"volumes,omitempty"`
}

// ComposeService is one compose service.
type ComposeService struct {
	Image       string             `yaml:"image"`
	Command     []string           `yaml:"command,omitempty"`
	Environment map[string]string  `yaml:"environment,omitempty"`
	Ports       []string           `yaml:"ports,omitempty"`
	Volumes     []string           `yaml:"volumes,omitempty"`
	Healthcheck *ComposeHealthcheck `yaml:"healthcheck,omitempty"`
}

// ComposeHealthcheck lets "compose up --wait" block until the database accepts connections.
type ComposeHealthcheck struct {
	Test     []string `yaml:"test"`
	Interval string   `yaml:"interval"`
	Timeout  string   `yaml:"timeout"`
	Retries  int      `yaml:"retries"`
}

// ComposeVolume is a named volume. It has no options.
type ComposeVolume struct{}

// NewComposeFile builds the compose definition for engine.
func NewComposeFile(engine models.DatabaseEngine) (*ComposeFile, error) {
	spec, ok := engineSpecs[engine]
	if !ok {
		return nil, fmt.Errorf("%w: no container image for %s", ErrUnsupportedEngine, engine)
	}

	volume := string(engine) + "_data"
	port := strconv.Itoa(spec.port)
	return &ComposeFile{
		Services: map[string]ComposeService{
			container.DatabaseService: {
				Image:       spec.image,
				Command:     spec.command,
				Environment: spec.environment,
				Ports:       []string{port + ":" + port},
				Volumes:     []string{volume + ":" + spec.dataPath},
				Healthcheck: &ComposeHealthcheck{
					Test:     spec.healthcheck,
					Interval: "5s",
					Timeout:  "5s",
					Retries:  20,
				},
			},
		},
		Volumes: map[string]ComposeVolume{volume: {}},
	}, nil
}

// Marshal encodes the compose file as YAML with a two-space indent.
// Map keys are emitted in sorted order.
func (c *ComposeFile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode compose file: %w", err)
	}
	return buf.Bytes(), nil
}
