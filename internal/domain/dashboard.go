package domain

// KPI is a headline number with its trend label.
type KPI struct {
	Value string `json:"value"`
	Trend string `json:"trend"`
}

// AdminDashboard is the administrator landing page data.
type AdminDashboard struct {
	KPIs  AdminKPIs         `json:"kpis"`
	Chart []HiringVelocity  `json:"chart"`
	Logs  []DistributionLog `json:"logs"`
}

// AdminKPIs are the four administrator headline numbers.
type AdminKPIs struct {
	Requisitions  KPI `json:"requisitions"`
	SecurityFlags KPI `json:"securityFlags"`
	Budget        KPI `json:"budget"`
	Users         KPI `json:"users"`
}

// HiringVelocity is one point of the hires-over-time chart.
type HiringVelocity struct {
	Name  string  `json:"name"`
	Hires float64 `json:"hires"`
}

// DistributionLog is one row of the user distribution table.
type DistributionLog struct {
	UserID string  `json:"userId"`
	Role   string  `json:"role"`
	Status float64 `json:"status"`
}

// OffersAnalytics is the administrator offer audit overview.
// Currency amounts are raw numbers; formatting is left to the caller.
type OffersAnalytics struct {
	Queue    []OfferAudit       `json:"queue"`
	Budget   []DepartmentBudget `json:"budget"`
	Velocity OfferVelocity      `json:"velocity"`
}

// OfferAudit is an offer waiting in the approval queue.
type OfferAudit struct {
	ID               string  `json:"id"`
	Candidate        string  `json:"candidate"`
	Role             string  `json:"role"`
	Offer            float64 `json:"offer"`
	Variance         float64 `json:"variance"`
	Status           string  `json:"status"`
	RequiresApproval bool    `json:"requiresApproval"`
}

// DepartmentBudget is the hiring budget consumption of one department.
type DepartmentBudget struct {
	Dept  string  `json:"dept"`
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
}

// OfferVelocity counts offers by outcome.
type OfferVelocity struct {
	Released float64 `json:"released"`
	Joined   float64 `json:"joined"`
	Declined float64 `json:"declined"`
}

// RecruiterDashboard is the recruiter landing page data.
type RecruiterDashboard struct {
	Matrix []PipelineMatrixRow `json:"matrix"`
	KPIs   RecruiterKPIs       `json:"kpis"`
}

// PipelineMatrixRow is one row of the recruiter funnel matrix.
type PipelineMatrixRow struct {
	Role        string  `json:"role"`
	ID          string  `json:"id"`
	Respondents float64 `json:"respondents"`
	Shortlist   float64 `json:"shortlist"`
	Selection   float64 `json:"selection"`
	Offer       float64 `json:"offer"`
	Joined      float64 `json:"joined"`
	DNJ         float64 `json:"dnj"`
	Agency      float64 `json:"agency"`
	Direct      float64 `json:"direct"`
	Budget      float64 `json:"budget"`
}

// RecruiterKPIs are the recruiter headline numbers.
type RecruiterKPIs struct {
	PoolStrength     float64 `json:"poolStrength"`
	JoinedEfficiency float64 `json:"joinedEfficiency"`
	RejectionPool    float64 `json:"rejectionPool"`
	CycleHealth      string  `json:"cycleHealth"`
}

// ManagerHub is the hiring manager landing page data. Both parts are passed
// through from the backend.
type ManagerHub struct {
	Stats        any `json:"stats"`
	Requisitions any `json:"requisitions"`
}
