package domain

import "strings"

// UserStatus is the account status shown for a user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// NormalizeUserStatus only yields UserStatusInactive on a case-insensitive
// match against "inactive". Everything else, including empty input, is active.
func NormalizeUserStatus(status string) UserStatus {
	if strings.EqualFold(status, string(UserStatusInactive)) {
		return UserStatusInactive
	}

	return UserStatusActive
}

// CandidateStatus is the pipeline stage of a candidate.
type CandidateStatus string

const (
	CandidateStatusApplied     CandidateStatus = "APPLIED"
	CandidateStatusVetting     CandidateStatus = "VETTING"
	CandidateStatusShortlisted CandidateStatus = "SHORTLISTED"
	CandidateStatusInterview   CandidateStatus = "INTERVIEW"
	CandidateStatusOffer       CandidateStatus = "OFFER"
	CandidateStatusJoined      CandidateStatus = "JOINED"
	CandidateStatusRejected    CandidateStatus = "REJECTED"
)

//nolint:gochecknoglobals
var candidateStages = map[string]CandidateStatus{
	"APPLIED":      CandidateStatusApplied,
	"SCREENING":    CandidateStatusVetting,
	"SHORTLISTED":  CandidateStatusShortlisted,
	"VETTING":      CandidateStatusVetting,
	"INTERVIEW":    CandidateStatusInterview,
	"INTERVIEWING": CandidateStatusInterview,
	"OFFERED":      CandidateStatusOffer,
	"OFFER":        CandidateStatusOffer,
	"JOINED":       CandidateStatusJoined,
	"REJECTED":     CandidateStatusRejected,
}

// NormalizeCandidateStatus maps a backend stage name onto a CandidateStatus.
// Unmatched stages yield CandidateStatusApplied.
func NormalizeCandidateStatus(stage string) CandidateStatus {
	if status, ok := candidateStages[strings.ToUpper(stage)]; ok {
		return status
	}

	return CandidateStatusApplied
}

// Verification is the state of an identity document check.
type Verification string

const (
	VerificationVerified Verification = "VERIFIED"
	VerificationMissing  Verification = "MISSING"
	VerificationPending  Verification = "PENDING"
)

// NormalizeVerification accepts VERIFIED, MISSING and PENDING in any case.
// Anything else yields VerificationPending.
func NormalizeVerification(status string) Verification {
	switch v := Verification(strings.ToUpper(status)); v {
	case VerificationVerified, VerificationMissing, VerificationPending:
		return v
	default:
		return VerificationPending
	}
}

// JobStatus is the state of a public job requisition.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusDraft  JobStatus = "DRAFT"
	JobStatusFrozen JobStatus = "FROZEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// NormalizeJobStatus yields JobStatusClosed for "closed" and JobStatusOpen otherwise.
func NormalizeJobStatus(status string) JobStatus {
	if strings.EqualFold(status, string(JobStatusClosed)) {
		return JobStatusClosed
	}

	return JobStatusOpen
}

// JobPriority is the urgency of a requisition.
type JobPriority string

const (
	JobPriorityUrgent JobPriority = "URGENT"
	JobPriorityNormal JobPriority = "NORMAL"
	JobPriorityLow    JobPriority = "LOW"
)

// NormalizePostingStatus maps a recruiter job posting status. Open postings are
// shown as LIVE, every other status is upper-cased verbatim.
func NormalizePostingStatus(status string) string {
	upper := strings.ToUpper(status)
	if upper == "OPEN" {
		return "LIVE"
	}

	return upper
}

// OfferStatus is the recruiter-side state of a released offer.
type OfferStatus string

const (
	OfferStatusOffered  OfferStatus = "OFFERED"
	OfferStatusAccepted OfferStatus = "ACCEPTED"
	OfferStatusJoined   OfferStatus = "JOINED"
	OfferStatusDNJ      OfferStatus = "DNJ"
)

// NormalizeOfferStatus folds declined, withdrawn, expired and renegotiated
// offers onto OfferStatusDNJ (did not join). Unknown values are OFFERED.
func NormalizeOfferStatus(status string) OfferStatus {
	switch strings.ToUpper(status) {
	case "DECLINED", "WITHDRAWN", "EXPIRED", "RENEG":
		return OfferStatusDNJ
	case "JOINED":
		return OfferStatusJoined
	case "ACCEPTED":
		return OfferStatusAccepted
	default:
		return OfferStatusOffered
	}
}

// FreezeProtocol is the hiring state of a manpower requisition.
type FreezeProtocol string

const (
	FreezeActive FreezeProtocol = "ACTIVE"
	FreezeFrozen FreezeProtocol = "FROZEN"
)

// NormalizeFreezeProtocol yields FreezeFrozen for "frozen" and FreezeActive otherwise.
func NormalizeFreezeProtocol(status string) FreezeProtocol {
	if strings.EqualFold(status, string(FreezeFrozen)) {
		return FreezeFrozen
	}

	return FreezeActive
}

// InterviewMode is how an interview is conducted.
type InterviewMode string

const (
	InterviewVirtual  InterviewMode = "Virtual"
	InterviewInPerson InterviewMode = "In-Person"
)

// NormalizeInterviewMode treats any mode mentioning video as virtual.
func NormalizeInterviewMode(mode string) InterviewMode {
	if strings.Contains(strings.ToLower(mode), "video") {
		return InterviewVirtual
	}

	return InterviewInPerson
}

// StepStatus is the progress of one step of a candidate's application.
type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepActive  StepStatus = "active"
	StepPending StepStatus = "pending"
)

// NormalizeStepStatus maps completed/done, in_progress/active and everything
// else onto done, active and pending.
func NormalizeStepStatus(status string) StepStatus {
	switch strings.ToLower(status) {
	case "completed", "done":
		return StepDone
	case "in_progress", "active":
		return StepActive
	default:
		return StepPending
	}
}
