package model

type SkillCategory string

const (
	SkillCarpentry      SkillCategory = "Carpentry"
	SkillTailoring      SkillCategory = "Tailoring"
	SkillHandicrafts    SkillCategory = "Handicrafts"
	SkillElectricalWork SkillCategory = "Electrical Work"
	SkillPlumbing       SkillCategory = "Plumbing"
	SkillMasonry        SkillCategory = "Masonry"
	SkillPottery        SkillCategory = "Pottery"
	SkillWeaving        SkillCategory = "Weaving"
	SkillFarming        SkillCategory = "Farming"
	SkillCooking        SkillCategory = "Cooking"
	SkillPainting       SkillCategory = "Painting"
	SkillWelding        SkillCategory = "Welding"
)

// SkillCategories is the fixed category catalog in display order.
var SkillCategories = []SkillCategory{
	SkillCarpentry, SkillTailoring, SkillHandicrafts, SkillElectricalWork,
	SkillPlumbing, SkillMasonry, SkillPottery, SkillWeaving,
	SkillFarming, SkillCooking, SkillPainting, SkillWelding,
}

func (s SkillCategory) Valid() bool {
	for _, c := range SkillCategories {
		if c == s {
			return true
		}
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceExpert       ExperienceLevel = "Expert"
)

var ExperienceLevels = []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceExpert}

func (e ExperienceLevel) Valid() bool {
	return e == ExperienceBeginner || e == ExperienceIntermediate || e == ExperienceExpert
}

type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityBusy         Availability = "Busy"
	AvailabilityNotAvailable Availability = "Not Available"
)

var AvailabilityStatuses = []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityNotAvailable}

func (a Availability) Valid() bool {
	return a == AvailabilityAvailable || a == AvailabilityBusy || a == AvailabilityNotAvailable
}

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

var JobStatuses = []JobStatus{JobStatusOpen, JobStatusClosed}

func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

type EmployerType string

const (
	EmployerTypeEmployer   EmployerType = "Employer"
	EmployerTypeNGO        EmployerType = "NGO"
	EmployerTypeGovernment EmployerType = "Government"
)

var EmployerTypes = []EmployerType{EmployerTypeEmployer, EmployerTypeNGO, EmployerTypeGovernment}

func (t EmployerType) Valid() bool {
	return t == EmployerTypeEmployer || t == EmployerTypeNGO || t == EmployerTypeGovernment
}
