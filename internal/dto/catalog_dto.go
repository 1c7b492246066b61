package dto

type CatalogDTO struct {
	SkillCategories      []string `json:"skill_categories"`
	Districts            []string `json:"districts"`
	ExperienceLevels     []string `json:"experience_levels"`
	AvailabilityStatuses []string `json:"availability_statuses"`
	JobStatuses          []string `json:"job_statuses"`
	EmployerTypes        []string `json:"employer_types"`
}

type SkillCountDTO struct {
	Category string `json:"category"`
	Workers  int    `json:"workers"`
}

type StatsDTO struct {
	SkilledWorkers    int             `json:"skilled_workers"`
	JobsPosted        int             `json:"jobs_posted"`
	OpenJobs          int             `json:"open_jobs"`
	VillagesConnected int             `json:"villages_connected"`
	DistrictsCovered  int             `json:"districts_covered"`
	SkillsMapped      int             `json:"skills_mapped"`
	BySkill           []SkillCountDTO `json:"by_skill"`
}

type DashboardDTO struct {
	Workers []WorkerDTO `json:"workers"`
	Jobs    []JobDTO    `json:"jobs"`
}
