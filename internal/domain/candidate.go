package domain

import (
	"errors"
	"io"
)

// ErrInvalidOfferDecision is returned for an OfferDecision other than accepted or declined.
var ErrInvalidOfferDecision = errors.New("offer decision must be accepted or declined")

// DefaultDocumentType is the document type of uploads that do not name one.
const DefaultDocumentType = "resume"

// Record is a backend JSON object passed through without reshaping.
type Record = map[string]any

// CandidateArtifact is the recruiter view of a candidate in the pipeline.
type CandidateArtifact struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	RoleApplied   string          `json:"roleApplied"`
	Status        CandidateStatus `json:"status"`
	MatchScore    float64         `json:"matchScore"`
	AppliedDate   string          `json:"appliedDate"`
	SkillDNA      []string        `json:"skillDna"`
	CurrentCTC    float64         `json:"currentCtc"`
	ExpectedCTC   float64         `json:"expectedCtc"`
	NoticePeriod  float64         `json:"noticePeriod"`
	TotalExp      float64         `json:"totalExp"`
	AadhaarStatus Verification    `json:"aadhaarStatus"`
	PanStatus     Verification    `json:"panStatus"`
	ResumeContent string          `json:"resumeContent"`
}

// ScreeningResult is the AI screening verdict for a candidate.
type ScreeningResult struct {
	Score   float64 `json:"score"`
	Summary string  `json:"summary"`
}

// CandidateProfile is the candidate's own view of their profile.
type CandidateProfile struct {
	Name      string              `json:"name"`
	Role      string              `json:"role"`
	Skills    []string            `json:"skills"`
	Documents []CandidateDocument `json:"documents"`
}

// CandidateDocument is an uploaded document listed on the candidate profile.
type CandidateDocument struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Status Verification `json:"status"`
	Date   string       `json:"date"`
}

// Upload is a file sent to the document upload endpoint. An empty
// DocumentType means DefaultDocumentType. Uploaded resumes are parsed
// server-side unless SkipResumeParsing is set.
type Upload struct {
	Filename          string
	ContentType       string
	Content           io.Reader
	DocumentType      string
	SkipResumeParsing bool
}

// ApplicationStatus is the candidate's view of their current application.
// JobDetails is nil when the backend has no active application; Data always
// holds the raw response.
type ApplicationStatus struct {
	JobDetails    *ApplicationJob `json:"jobDetails"`
	PipelineSteps []PipelineStep  `json:"pipelineSteps"`
	Offer         *CandidateOffer `json:"offer"`
	Data          Record          `json:"data,omitempty"`
}

// ApplicationJob describes the job a candidate applied to.
type ApplicationJob struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Summary          string   `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
}

// PipelineStep is one step of the hiring pipeline shown to a candidate.
type PipelineStep struct {
	Label  string     `json:"label"`
	Date   string     `json:"date"`
	Status StepStatus `json:"status"`
}

// CandidateOffer is an offer as presented to the candidate.
type CandidateOffer struct {
	ID            string  `json:"id"`
	OfferCode     string  `json:"offerCode"`
	Status        string  `json:"status"`
	CTCTotal      float64 `json:"ctcTotal"`
	DateOfJoining string  `json:"dateOfJoining"`
	ValidityDays  float64 `json:"validityDays"`
	OfferedAt     string  `json:"offeredAt"`
	JoinRequest   any     `json:"joinRequest"`
}

// OfferDecision is a candidate's answer to an offer.
type OfferDecision string

const (
	OfferAccepted OfferDecision = "accepted"
	OfferDeclined OfferDecision = "declined"
)

// Valid reports whether d is OfferAccepted or OfferDeclined.
func (d OfferDecision) Valid() bool {
	return d == OfferAccepted || d == OfferDeclined
}
