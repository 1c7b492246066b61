package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fadilmartias/skill-connect/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var sampleData []byte

type Dataset struct {
	Districts []string         `yaml:"districts"`
	Workers   []model.Worker   `yaml:"workers"`
	Employers []model.Employer `yaml:"employers"`
	Jobs      []model.Job      `yaml:"jobs"`
}

// Load decodes the data set at path, or the embedded sample data when path
// is empty. The result is validated before it is returned.
func Load(path string) (*Dataset, error) {
	data := sampleData
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) Validate() error {
	seen := make(map[string]bool)
	for _, w := range ds.Workers {
		if w.ID == "" || seen[w.ID] {
			return fmt.Errorf("worker %q: missing or duplicate id", w.ID)
		}
		seen[w.ID] = true
		if len(w.Skills) == 0 {
			return fmt.Errorf("worker %s: at least one skill is required", w.ID)
		}
		for _, s := range w.Skills {
			if !s.Category.Valid() {
				return fmt.Errorf("worker %s: unknown skill category %q", w.ID, s.Category)
			}
		}
		if !w.ExperienceLevel.Valid() {
			return fmt.Errorf("worker %s: unknown experience level %q", w.ID, w.ExperienceLevel)
		}
		if !w.Availability.Valid() {
			return fmt.Errorf("worker %s: unknown availability %q", w.ID, w.Availability)
		}
	}

	clear(seen)
	for _, e := range ds.Employers {
		if e.ID == "" || seen[e.ID] {
			return fmt.Errorf("employer %q: missing or duplicate id", e.ID)
		}
		seen[e.ID] = true
		if !e.Type.Valid() {
			return fmt.Errorf("employer %s: unknown type %q", e.ID, e.Type)
		}
	}

	clear(seen)
	for _, j := range ds.Jobs {
		if j.ID == "" || seen[j.ID] {
			return fmt.Errorf("job %q: missing or duplicate id", j.ID)
		}
		seen[j.ID] = true
		if !j.RequiredSkill.Valid() {
			return fmt.Errorf("job %s: unknown skill category %q", j.ID, j.RequiredSkill)
		}
		if !j.Status.Valid() {
			return fmt.Errorf("job %s: unknown status %q", j.ID, j.Status)
		}
	}
	return nil
}
