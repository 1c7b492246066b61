package repository

import (
	"slices"

	"github.com/fadilmartias/skill-connect/internal/model"
)

// CatalogRepository holds the fixed option lists offered by the forms and
// filters. It is immutable after construction.
type CatalogRepository struct {
	districts []string
}

func NewCatalogRepository(districts []string) *CatalogRepository {
	return &CatalogRepository{districts: slices.Clone(districts)}
}

func (r *CatalogRepository) Districts() []string {
	return slices.Clone(r.districts)
}

func (r *CatalogRepository) HasDistrict(d string) bool {
	return slices.Contains(r.districts, d)
}

func (r *CatalogRepository) SkillCategories() []model.SkillCategory {
	return slices.Clone(model.SkillCategories)
}
