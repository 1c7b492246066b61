package repository

import (
	"github.com/fadilmartias/skill-connect/internal/model"
)

type jobRow struct {
	ID       string
	Position string
	Seq      uint64
	Status   string
	Job      model.Job
}

func (r *jobRow) seq() uint64 { return r.Seq }

func newJobRow(j model.Job, seq uint64) *jobRow {
	return &jobRow{
		ID:       j.ID,
		Position: positionKey(seq),
		Seq:      seq,
		Status:   string(j.Status),
		Job:      j,
	}
}

type JobRepository struct {
	store *Store
}

func NewJobRepository(store *Store) *JobRepository {
	return &JobRepository{store}
}

// List returns a consistent snapshot of all jobs, newest posting first.
func (r *JobRepository) List() ([]model.Job, error) {
	rows, err := r.store.snapshot(tableJob)
	if err != nil {
		return nil, err
	}
	jobs := make([]model.Job, 0, len(rows))
	for _, obj := range rows {
		jobs = append(jobs, obj.(*jobRow).Job)
	}
	return jobs, nil
}

func (r *JobRepository) FindByID(id string) (*model.Job, error) {
	obj, err := r.store.first(tableJob, indexID, id)
	if err != nil {
		return nil, err
	}
	j := obj.(*jobRow).Job
	return &j, nil
}

// Create prepends job so it is listed before every existing posting.
func (r *JobRepository) Create(job *model.Job) error {
	return r.store.insert(tableJob, job.ID, true, func(seq uint64) interface{} {
		return newJobRow(*job, seq)
	})
}

func (r *JobRepository) CountByStatus(status model.JobStatus) (int, error) {
	return r.store.count(tableJob, indexStatus, string(status))
}
