package response

// ListMeta describes a filtered listing. Count is the number of records
// returned, Total the size of the unfiltered collection.
type ListMeta struct {
	Count    int  `json:"count"`
	Total    int  `json:"total"`
	Filtered bool `json:"filtered"`
}

type DashboardMeta struct {
	Workers int `json:"workers"`
	Jobs    int `json:"jobs"`
}
