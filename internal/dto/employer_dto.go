package dto

import "github.com/fadilmartias/skill-connect/internal/model"

type EmployerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	CreatedAt    string `json:"created_at"`
}

type RegisterEmployerRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
}

func NewEmployerDTO(e model.Employer) EmployerDTO {
	return EmployerDTO{
		ID:           e.ID,
		Name:         e.Name,
		Organization: e.Organization,
		Type:         string(e.Type),
		Location:     e.Location,
		Phone:        e.Phone,
		CreatedAt:    e.CreatedAt.Format(DateLayout),
	}
}

func NewEmployerDTOs(es []model.Employer) []EmployerDTO {
	out := make([]EmployerDTO, 0, len(es))
	for _, e := range es {
		out = append(out, NewEmployerDTO(e))
	}
	return out
}
