package dto

import "github.com/fadilmartias/skill-connect/internal/model"

const DateLayout = "2006-01-02"

type SkillDTO struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

type WorkerDTO struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Village         string     `json:"village"`
	District        string     `json:"district"`
	Skills          []SkillDTO `json:"skills"`
	ExperienceLevel string     `json:"experience_level"`
	Availability    string     `json:"availability"`
	Phone           string     `json:"phone"`
	CreatedAt       string     `json:"created_at"`
}

type RegisterWorkerRequest struct {
	Name            string     `json:"name"`
	Village         string     `json:"village"`
	District        string     `json:"district"`
	ExperienceLevel string     `json:"experience_level"`
	Availability    string     `json:"availability"`
	Phone           string     `json:"phone"`
	Skills          []SkillDTO `json:"skills"`
}

func NewWorkerDTO(w model.Worker) WorkerDTO {
	skills := make([]SkillDTO, 0, len(w.Skills))
	for _, s := range w.Skills {
		skills = append(skills, SkillDTO{Category: string(s.Category), Description: s.Description})
	}
	return WorkerDTO{
		ID:              w.ID,
		Name:            w.Name,
		Village:         w.Village,
		District:        w.District,
		Skills:          skills,
		ExperienceLevel: string(w.ExperienceLevel),
		Availability:    string(w.Availability),
		Phone:           w.Phone,
		CreatedAt:       w.CreatedAt.Format(DateLayout),
	}
}

func NewWorkerDTOs(ws []model.Worker) []WorkerDTO {
	out := make([]WorkerDTO, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewWorkerDTO(w))
	}
	return out
}
