package repository

import (
	"github.com/fadilmartias/skill-connect/internal/model"
)

type employerRow struct {
	ID       string
	Position string
	Seq      uint64
	Employer model.Employer
}

func (r *employerRow) seq() uint64 { return r.Seq }

func newEmployerRow(e model.Employer, seq uint64) *employerRow {
	return &employerRow{
		ID:       e.ID,
		Position: positionKey(seq),
		Seq:      seq,
		Employer: e,
	}
}

type EmployerRepository struct {
	store *Store
}

func NewEmployerRepository(store *Store) *EmployerRepository {
	return &EmployerRepository{store}
}

func (r *EmployerRepository) List() ([]model.Employer, error) {
	rows, err := r.store.snapshot(tableEmployer)
	if err != nil {
		return nil, err
	}
	employers := make([]model.Employer, 0, len(rows))
	for _, obj := range rows {
		employers = append(employers, obj.(*employerRow).Employer)
	}
	return employers, nil
}

func (r *EmployerRepository) FindByID(id string) (*model.Employer, error) {
	obj, err := r.store.first(tableEmployer, indexID, id)
	if err != nil {
		return nil, err
	}
	e := obj.(*employerRow).Employer
	return &e, nil
}

func (r *EmployerRepository) Create(e *model.Employer) error {
	return r.store.insert(tableEmployer, e.ID, false, func(seq uint64) interface{} {
		return newEmployerRow(*e, seq)
	})
}
