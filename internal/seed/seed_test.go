package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadilmartias/skill-connect/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedSample(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	assert.Len(t, ds.Workers, 6)
	assert.Len(t, ds.Employers, 3)
	assert.Len(t, ds.Jobs, 4)
	assert.Len(t, ds.Districts, 10)

	assert.Equal(t, "Ramesh Kumar", ds.Workers[0].Name)
	assert.Equal(t, model.AvailabilityNotAvailable, ds.Workers[5].Availability)
	assert.Equal(t, []model.SkillCategory{model.SkillMasonry, model.SkillPainting},
		[]model.SkillCategory{ds.Workers[4].Skills[0].Category, ds.Workers[4].Skills[1].Category})
	assert.Equal(t, model.JobStatusClosed, ds.Jobs[3].Status)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), ds.Workers[0].CreatedAt.UTC())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	content := `
districts: [Pune]
workers:
  - id: x1
    name: Test Worker
    village: Test
    district: Pune
    skills:
      - category: Welding
        description: Gate fabrication.
    experience_level: Beginner
    availability: Busy
    phone: "1"
    created_at: 2025-05-01
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Workers, 1)
	assert.Equal(t, model.SkillWelding, ds.Workers[0].Skills[0].Category)
	assert.Empty(t, ds.Jobs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "workers: ["},
		{"duplicate worker id", `
workers:
  - {id: w1, skills: [{category: Pottery}], experience_level: Expert, availability: Busy}
  - {id: w1, skills: [{category: Pottery}], experience_level: Expert, availability: Busy}
`},
		{"worker without skills", `
workers:
  - {id: w1, experience_level: Expert, availability: Busy}
`},
		{"unknown category", `
jobs:
  - {id: j1, required_skill: Juggling, status: Open}
`},
		{"unknown status", `
jobs:
  - {id: j1, required_skill: Pottery, status: Paused}
`},
		{"unknown employer type", `
employers:
  - {id: e1, type: Club}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
