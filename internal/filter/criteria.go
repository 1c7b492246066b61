package filter

import (
	"strings"

	"github.com/fadilmartias/skill-connect/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A blank criterion value ("") places no constraint on the result. There is
// no separate "unset" state.

type WorkerCriteria struct {
	SearchTerm    string
	SkillCategory model.SkillCategory
	District      string
	Availability  model.Availability
}

func (c WorkerCriteria) Active() bool {
	return c.SearchTerm != "" || c.SkillCategory != "" || c.District != "" || c.Availability != ""
}

type JobCriteria struct {
	SearchTerm    string
	RequiredSkill model.SkillCategory
	Location      string
	Status        model.JobStatus
}

func (c JobCriteria) Active() bool {
	return c.SearchTerm != "" || c.RequiredSkill != "" || c.Location != "" || c.Status != ""
}

// termMatcher tests case-insensitive substring containment. A nil matcher
// matches everything.
type termMatcher struct {
	caser cases.Caser
	term  string
}

// newTermMatcher builds a matcher for one query call. cases.Caser is
// stateful, so matchers are never shared between calls.
func newTermMatcher(term string) *termMatcher {
	if term == "" {
		return nil
	}
	caser := cases.Lower(language.Und)
	return &termMatcher{caser: caser, term: caser.String(term)}
}

func (m *termMatcher) anyOf(fields ...string) bool {
	if m == nil {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.caser.String(f), m.term) {
			return true
		}
	}
	return false
}
