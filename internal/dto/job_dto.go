package dto

import "github.com/fadilmartias/skill-connect/internal/model"

type JobDTO struct {
	ID            string `json:"id"`
	EmployerID    string `json:"employer_id"`
	EmployerName  string `json:"employer_name"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	RequiredSkill string `json:"required_skill"`
	Location      string `json:"location"`
	ContactInfo   string `json:"contact_info"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type PostJobRequest struct {
	EmployerID    string `json:"employer_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	RequiredSkill string `json:"required_skill"`
	Location      string `json:"location"`
	ContactInfo   string `json:"contact_info"`
}

func NewJobDTO(j model.Job) JobDTO {
	return JobDTO{
		ID:            j.ID,
		EmployerID:    j.EmployerID,
		EmployerName:  j.EmployerName,
		Title:         j.Title,
		Description:   j.Description,
		RequiredSkill: string(j.RequiredSkill),
		Location:      j.Location,
		ContactInfo:   j.ContactInfo,
		Status:        string(j.Status),
		CreatedAt:     j.CreatedAt.Format(DateLayout),
	}
}

func NewJobDTOs(js []model.Job) []JobDTO {
	out := make([]JobDTO, 0, len(js))
	for _, j := range js {
		out = append(out, NewJobDTO(j))
	}
	return out
}
