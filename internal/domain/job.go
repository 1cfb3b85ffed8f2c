package domain

// JobRequisition is the public view of an open position.
type JobRequisition struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Department    string      `json:"department"`
	HiringManager string      `json:"hiringManager"`
	Status        JobStatus   `json:"status"`
	Applicants    float64     `json:"applicants"`
	Priority      JobPriority `json:"priority"`
	PostedDate    string      `json:"postedDate"`
}

// JobContent is a generated job summary and long-form description.
type JobContent struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// JobPosting is the recruiter view of a job posting.
type JobPosting struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Dept    string `json:"dept"`
	Posted  string `json:"posted"`
	Status  string `json:"status"`
}

// PublishResult reports how many draft postings went live.
type PublishResult struct {
	Updated float64 `json:"updated"`
	Message string  `json:"message"`
}
