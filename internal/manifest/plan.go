package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/obrakit-labs/obrakit/internal/estructura"
)

// Plan is the machine-readable record of the folder tree resolved for one
// project: the project name plus the 17 relative paths in creation order.
// A plan is produced by `obrakit plan --output` and consumed by
// `obrakit doctor --check-manifest`.
type Plan struct {
	Project     string    `yaml:"project"`
	BaseDir     string    `yaml:"base_dir,omitempty"`
	GeneratedAt time.Time `yaml:"generated_at,omitempty"`
	Paths       []string  `yaml:"paths"`
}

// NewPlan resolves the structure for project and returns it as a plan.
// baseDir is recorded verbatim; the paths are always relative to it.
func NewPlan(project, baseDir string) (*Plan, error) {
	if err := estructura.ValidateName(project); err != nil {
		return nil, err
	}
	return &Plan{
		Project:     project,
		BaseDir:     baseDir,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Paths:       estructura.RelativePaths(project),
	}, nil
}

// ParseFile reads and unmarshals a plan file. It does not validate against
// the schema; use ValidateFile for that.
func ParseFile(path string) (*Plan, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", path, err)
	}
	return &p, nil
}

// WriteFile marshals the plan to YAML and writes it to path.
func (p *Plan) WriteFile(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing plan %s: %w", path, err)
	}
	return nil
}

// Verify checks that the plan's paths are exactly the paths the template
// table resolves for the plan's project name, in order. A plan written by an
// older binary with different templates fails here even though it is
// schema-valid.
func (p *Plan) Verify() error {
	if err := estructura.ValidateName(p.Project); err != nil {
		return err
	}
	want := estructura.RelativePaths(p.Project)
	if len(p.Paths) != len(want) {
		return fmt.Errorf("plan has %d paths, expected %d", len(p.Paths), len(want))
	}
	for i := range want {
		if p.Paths[i] != want[i] {
			return fmt.Errorf("plan path %d is %q, expected %q", i, p.Paths[i], want[i])
		}
	}
	return nil
}

// readFile reads a plan file with a size sanity limit.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("plan %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", path, err)
	}
	return data, nil
}
