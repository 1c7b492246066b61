package filter

import "github.com/fadilmartias/skill-connect/internal/model"

// Workers returns the workers matching every active criterion, in input
// order. The input is not modified and the result never aliases it.
func Workers(records []model.Worker, criteria WorkerCriteria) []model.Worker {
	term := newTermMatcher(criteria.SearchTerm)
	out := make([]model.Worker, 0, len(records))
	for i := range records {
		if matchWorker(&records[i], criteria, term) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchWorker(w *model.Worker, c WorkerCriteria, term *termMatcher) bool {
	if term != nil && !term.anyOf(append([]string{w.Name}, w.Categories()...)...) {
		return false
	}
	if c.SkillCategory != "" && !w.HasSkill(c.SkillCategory) {
		return false
	}
	if c.District != "" && w.District != c.District {
		return false
	}
	if c.Availability != "" && w.Availability != c.Availability {
		return false
	}
	return true
}

// Jobs returns the jobs matching every active criterion, in input order.
func Jobs(records []model.Job, criteria JobCriteria) []model.Job {
	term := newTermMatcher(criteria.SearchTerm)
	out := make([]model.Job, 0, len(records))
	for i := range records {
		if matchJob(&records[i], criteria, term) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchJob(j *model.Job, c JobCriteria, term *termMatcher) bool {
	if !term.anyOf(j.Title, j.Description) {
		return false
	}
	if c.RequiredSkill != "" && j.RequiredSkill != c.RequiredSkill {
		return false
	}
	if c.Location != "" && j.Location != c.Location {
		return false
	}
	if c.Status != "" && j.Status != c.Status {
		return false
	}
	return true
}
