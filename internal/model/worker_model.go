package model

import "time"

type Skill struct {
	Category    SkillCategory `yaml:"category" json:"category"`
	Description string        `yaml:"description" json:"description"`
}

type Worker struct {
	ID              string          `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Village         string          `yaml:"village" json:"village"`
	District        string          `yaml:"district" json:"district"`
	Skills          []Skill         `yaml:"skills" json:"skills"`
	ExperienceLevel ExperienceLevel `yaml:"experience_level" json:"experience_level"`
	Availability    Availability    `yaml:"availability" json:"availability"`
	Phone           string          `yaml:"phone" json:"phone"`
	CreatedAt       time.Time       `yaml:"created_at" json:"created_at"`
}

// HasSkill reports whether any of the worker's skills is in category c.
func (w *Worker) HasSkill(c SkillCategory) bool {
	for _, s := range w.Skills {
		if s.Category == c {
			return true
		}
	}
	return false
}

func (w *Worker) Categories() []string {
	out := make([]string, 0, len(w.Skills))
	for _, s := range w.Skills {
		out = append(out, string(s.Category))
	}
	return out
}
