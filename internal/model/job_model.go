package model

import "time"

type Job struct {
	ID            string        `yaml:"id" json:"id"`
	EmployerID    string        `yaml:"employer_id" json:"employer_id"`
	EmployerName  string        `yaml:"employer_name" json:"employer_name"`
	Title         string        `yaml:"title" json:"title"`
	Description   string        `yaml:"description" json:"description"`
	RequiredSkill SkillCategory `yaml:"required_skill" json:"required_skill"`
	Location      string        `yaml:"location" json:"location"`
	ContactInfo   string        `yaml:"contact_info" json:"contact_info"`
	Status        JobStatus     `yaml:"status" json:"status"`
	CreatedAt     time.Time     `yaml:"created_at" json:"created_at"`
}
