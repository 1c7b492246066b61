package model

import "time"

type Employer struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	Organization string       `yaml:"organization" json:"organization"`
	Type         EmployerType `yaml:"type" json:"type"`
	Location     string       `yaml:"location" json:"location"`
	Phone        string       `yaml:"phone" json:"phone"`
	CreatedAt    time.Time    `yaml:"created_at" json:"created_at"`
}
