package repository

import (
	"slices"

	"github.com/fadilmartias/skill-connect/internal/model"
)

type workerRow struct {
	ID       string
	Position string
	Seq      uint64
	District string
	Skills   []string
	Worker   model.Worker
}

func (r *workerRow) seq() uint64 { return r.Seq }

func newWorkerRow(w model.Worker, seq uint64) *workerRow {
	w.Skills = slices.Clone(w.Skills)
	return &workerRow{
		ID:       w.ID,
		Position: positionKey(seq),
		Seq:      seq,
		District: w.District,
		Skills:   w.Categories(),
		Worker:   w,
	}
}

// worker returns a copy that shares no memory with the stored row.
func (r *workerRow) worker() model.Worker {
	w := r.Worker
	w.Skills = slices.Clone(w.Skills)
	return w
}

type WorkerRepository struct {
	store *Store
}

func NewWorkerRepository(store *Store) *WorkerRepository {
	return &WorkerRepository{store}
}

// List returns a consistent snapshot of all workers in registration order.
func (r *WorkerRepository) List() ([]model.Worker, error) {
	rows, err := r.store.snapshot(tableWorker)
	if err != nil {
		return nil, err
	}
	workers := make([]model.Worker, 0, len(rows))
	for _, obj := range rows {
		workers = append(workers, obj.(*workerRow).worker())
	}
	return workers, nil
}

func (r *WorkerRepository) FindByID(id string) (*model.Worker, error) {
	obj, err := r.store.first(tableWorker, indexID, id)
	if err != nil {
		return nil, err
	}
	w := obj.(*workerRow).worker()
	return &w, nil
}

// Create appends w after the last registered worker.
func (r *WorkerRepository) Create(w *model.Worker) error {
	return r.store.insert(tableWorker, w.ID, false, func(seq uint64) interface{} {
		return newWorkerRow(*w, seq)
	})
}

// CountBySkill returns how many workers list category among their skills.
func (r *WorkerRepository) CountBySkill(category model.SkillCategory) (int, error) {
	return r.store.count(tableWorker, indexSkill, string(category))
}

// CountByDistrict returns how many workers live in district.
func (r *WorkerRepository) CountByDistrict(district string) (int, error) {
	return r.store.count(tableWorker, indexDistrict, district)
}
