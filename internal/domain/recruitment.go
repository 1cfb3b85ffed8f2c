package domain

// Agency is an empanelled recruitment agency.
type Agency struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Tier      string  `json:"tier"`
	SLA       float64 `json:"sla"`
	Status    string  `json:"status"`
	Location  string  `json:"location"`
	SpocName  string  `json:"spocName"`
	SpocEmail string  `json:"spocEmail"`
}

// Mpr is a manpower requisition as tracked by recruiters.
type Mpr struct {
	ID                  string         `json:"id"`
	JobRole             string         `json:"jobRole"`
	Manager             string         `json:"manager"`
	MprDate             string         `json:"mprDate"`
	TargetDate          string         `json:"targetDate"`
	DaysLeft            float64        `json:"daysLeft"`
	FreezeProtocol      FreezeProtocol `json:"freezeProtocol"`
	ProfilesInHand      float64        `json:"profilesInHand"`
	InterviewsScheduled float64        `json:"interviewsScheduled"`
	ToBeScheduled       float64        `json:"toBeScheduled"`
	Selection           float64        `json:"selection"`
	Rejected            float64        `json:"rejected"`
	OnHold              float64        `json:"onHold"`
}

// Interview is a scheduled interview as seen by recruiters.
type Interview struct {
	ID          string        `json:"id"`
	CandidateID float64       `json:"candidateId"`
	Candidate   string        `json:"candidate"`
	Round       string        `json:"round"`
	Time        string        `json:"time"`
	Panel       string        `json:"panel"`
	Mode        InterviewMode `json:"mode"`
	Status      string        `json:"status"`
}

// Offer is a released offer as seen by recruiters.
type Offer struct {
	ID                 string      `json:"id"`
	Candidate          string      `json:"candidate"`
	Role               string      `json:"role"`
	CTC                string      `json:"ctc"`
	Joining            string      `json:"joining"`
	JoinRequestPending bool        `json:"joinRequestPending"`
	Status             OfferStatus `json:"status"`
}

// ManagerRequest is a requisition raised by the current hiring manager.
type ManagerRequest struct {
	ID                 string  `json:"id"`
	RequisitionCode    string  `json:"requisitionCode"`
	JobTitle           string  `json:"jobTitle"`
	Department         string  `json:"department"`
	Status             string  `json:"status"`
	PositionsRequested float64 `json:"positionsRequested"`
	PositionsApproved  float64 `json:"positionsApproved"`
	CreatedAt          string  `json:"createdAt"`
}

// ManagerInterview is an interview the current hiring manager sits on.
type ManagerInterview struct {
	ID        string `json:"id"`
	Candidate string `json:"candidate"`
	Role      string `json:"role"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}
