package atssvc

import (
	"context"
	"strings"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// RecruiterAPI wraps the recruiter workspace endpoints. Candidate calls share
// their endpoints with CandidatesAPI.
type RecruiterAPI struct {
	*base

	candidates *CandidatesAPI
}

// GetCandidates is CandidatesAPI.GetAll.
func (a *RecruiterAPI) GetCandidates(ctx context.Context) ([]domain.CandidateArtifact, error) {
	return a.candidates.GetAll(ctx)
}

// ScreenCandidate is CandidatesAPI.Screen.
func (a *RecruiterAPI) ScreenCandidate(ctx context.Context, id string) (domain.ScreeningResult, error) {
	return a.candidates.Screen(ctx, id)
}

// UpdateCandidateStatus is CandidatesAPI.UpdateStatus.
func (a *RecruiterAPI) UpdateCandidateStatus(ctx context.Context, id, status, notes string) (any, error) {
	return a.candidates.UpdateStatus(ctx, id, status, notes)
}

// DeleteCandidate is CandidatesAPI.Delete.
func (a *RecruiterAPI) DeleteCandidate(ctx context.Context, id string) (any, error) {
	return a.candidates.Delete(ctx, id)
}

// GetDashboardOverview returns the recruiter funnel and headline numbers.
// The matrix holds a single aggregated row, or none when the backend sent no
// matrix data.
func (a *RecruiterAPI) GetDashboardOverview(ctx context.Context) (domain.RecruiterDashboard, error) {
	var resp domain.Record

	if err := a.do(ctx, "get recruiter dashboard", http_.Request{Endpoint: "/api/stats/recruiter-dashboard"}, &resp); err != nil {
		return domain.RecruiterDashboard{}, err
	}

	matrix := record(resp["matrixData"])

	out := domain.RecruiterDashboard{Matrix: make([]domain.PipelineMatrixRow, 0, 1)}

	if truthy(resp["matrix"]) || truthy(resp["matrixData"]) {
		out.Matrix = append(out.Matrix, domain.PipelineMatrixRow{
			Role:        "Pipeline",
			Respondents: num(matrix["sourced"]),
			Shortlist:   num(matrix["screened"]),
			Selection:   num(matrix["interviewed"]),
			Offer:       num(matrix["offered"]),
			Joined:      num(matrix["hired"]),
			DNJ:         num(matrix["dnj"]),
		})
	}

	pool := first(matrix, "sourced")
	if pool == nil {
		pool = first(record(at(resp["kpis"], 1)), "value")
	}

	out.KPIs = domain.RecruiterKPIs{
		PoolStrength:     num(pool),
		JoinedEfficiency: num(matrix["hired"]),
		RejectionPool:    num(matrix["dnj"]),
		CycleHealth:      strOr(record(resp["performanceMetrics"]), "0", "offerAcceptanceRate") + "%",
	}

	return out, nil
}

// GetAgencies lists empanelled agencies.
func (a *RecruiterAPI) GetAgencies(ctx context.Context) ([]domain.Agency, error) {
	raw, err := a.list(ctx, "get agencies", "/api/agencies")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Agency, 0, len(raw))
	for _, ag := range raw {
		out = append(out, domain.Agency{
			ID:        str(ag["id"]),
			Name:      str(ag["name"]),
			Tier:      strings.ToUpper(str(firstTruthy(ag, "tier"))),
			SLA:       num(ag["sla"]),
			Status:    strings.ToUpper(str(firstTruthy(ag, "status"))),
			Location:  str(ag["location"]),
			SpocName:  str(ag["spocName"]),
			SpocEmail: str(ag["spocEmail"]),
		})
	}

	return out, nil
}

// SubmitAgencyCandidate records a candidate sourced by an agency.
func (a *RecruiterAPI) SubmitAgencyCandidate(ctx context.Context, submission any) (any, error) {
	return a.passthrough(ctx, "submit agency candidate", http_.Request{
		Endpoint: "/api/agencies/submit-candidate",
		Method:   http_.MethodPost,
		Payload:  submission,
	})
}

// EmpanelAgency adds an agency.
func (a *RecruiterAPI) EmpanelAgency(ctx context.Context, agency any) (any, error) {
	return a.passthrough(ctx, "empanel agency", http_.Request{
		Endpoint: "/api/agencies",
		Method:   http_.MethodPost,
		Payload:  agency,
	})
}

// UpdateAgencyStatus sets the status of agency id.
func (a *RecruiterAPI) UpdateAgencyStatus(ctx context.Context, id, status string) (any, error) {
	return a.passthrough(ctx, "update agency status", http_.Request{
		Endpoint: path("/api/agencies/%s/status", id),
		Method:   http_.MethodPut,
		Payload:  map[string]string{"status": status},
	})
}

// DeleteAgency removes agency id.
func (a *RecruiterAPI) DeleteAgency(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "delete agency", http_.Request{
		Endpoint: path("/api/agencies/%s", id),
		Method:   http_.MethodDelete,
	})
}

// GetJobPostings lists all postings including drafts.
func (a *RecruiterAPI) GetJobPostings(ctx context.Context) ([]domain.JobPosting, error) {
	raw, err := a.list(ctx, "get job postings", "/api/jobs")
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobPosting, 0, len(raw))
	for _, j := range raw {
		out = append(out, domain.JobPosting{
			ID:      str(j["id"]),
			Title:   str(j["title"]),
			Summary: str(firstTruthy(j, "description")),
			Dept:    str(firstTruthy(j, "dept", "department")),
			Posted:  a.conv.date(j["posted"]),
			Status:  domain.NormalizePostingStatus(str(firstTruthy(j, "status"))),
		})
	}

	return out, nil
}

// DeleteJobPosting removes posting id.
func (a *RecruiterAPI) DeleteJobPosting(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "delete job posting", http_.Request{
		Endpoint: path("/api/jobs/%s", id),
		Method:   http_.MethodDelete,
	})
}

// UpdateJobPosting replaces posting id with job.
func (a *RecruiterAPI) UpdateJobPosting(ctx context.Context, id string, job any) (any, error) {
	return a.passthrough(ctx, "update job posting", http_.Request{
		Endpoint: path("/api/jobs/%s", id),
		Method:   http_.MethodPut,
		Payload:  job,
	})
}

// PublishDraftJobs takes every draft posting live.
func (a *RecruiterAPI) PublishDraftJobs(ctx context.Context) (domain.PublishResult, error) {
	var resp domain.Record

	err := a.do(ctx, "publish draft jobs", http_.Request{
		Endpoint: "/api/jobs/publish-drafts",
		Method:   http_.MethodPost,
	}, &resp)
	if err != nil {
		return domain.PublishResult{}, err
	}

	return domain.PublishResult{Updated: num(resp["updated"]), Message: str(resp["message"])}, nil
}

// GetMprs lists manpower requisitions with their pipeline counters.
func (a *RecruiterAPI) GetMprs(ctx context.Context) ([]domain.Mpr, error) {
	raw, err := a.list(ctx, "get mprs", "/api/mpr")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Mpr, 0, len(raw))
	for _, m := range raw {
		stats := record(m["pipelineStats"])

		out = append(out, domain.Mpr{
			ID:                  str(m["id"]),
			JobRole:             str(m["jobRole"]),
			Manager:             str(m["manager"]),
			MprDate:             a.conv.date(m["createdAt"]),
			TargetDate:          a.conv.date(m["targetDate"]),
			DaysLeft:            num(m["daysLeft"]),
			FreezeProtocol:      domain.NormalizeFreezeProtocol(str(firstTruthy(m, "status"))),
			ProfilesInHand:      num(stats["profilesReceived"]),
			InterviewsScheduled: num(stats["interviewed"]),
			Selection:           num(stats["selected"]),
			Rejected:            num(stats["rejected"]),
			OnHold:              num(stats["onHold"]),
		})
	}

	return out, nil
}

// UpdateMprStatus freezes or reactivates requisition id.
func (a *RecruiterAPI) UpdateMprStatus(ctx context.Context, id string, status domain.FreezeProtocol) (any, error) {
	return a.passthrough(ctx, "update mpr status", http_.Request{
		Endpoint: path("/api/mpr/%s/status", id),
		Method:   http_.MethodPut,
		Payload:  map[string]domain.FreezeProtocol{"status": status},
	})
}

// GetInterviews lists scheduled interviews.
func (a *RecruiterAPI) GetInterviews(ctx context.Context) ([]domain.Interview, error) {
	raw, err := a.list(ctx, "get interviews", "/api/interviews")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Interview, 0, len(raw))
	for _, i := range raw {
		panel := str(firstTruthy(i, "panel"))
		if members, ok := i["panel"].([]any); ok {
			panel = strings.Join(strs(members), ", ")
		}

		out = append(out, domain.Interview{
			ID:          str(i["id"]),
			CandidateID: num(first(i, "candidateId", "candidate_id")),
			Candidate:   str(i["candidate"]),
			Round:       str(i["round"]),
			Time:        str(i["time"]),
			Panel:       panel,
			Mode:        domain.NormalizeInterviewMode(str(firstTruthy(i, "mode"))),
			Status:      str(i["status"]),
		})
	}

	return out, nil
}

// DeleteInterview cancels interview id.
func (a *RecruiterAPI) DeleteInterview(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "delete interview", http_.Request{
		Endpoint: path("/api/interviews/%s", id),
		Method:   http_.MethodDelete,
	})
}

// SubmitInterviewEvaluation records the panel evaluation of an interview.
func (a *RecruiterAPI) SubmitInterviewEvaluation(ctx context.Context, evaluation any) (any, error) {
	return a.passthrough(ctx, "submit interview evaluation", http_.Request{
		Endpoint: "/api/interviews/evaluation",
		Method:   http_.MethodPost,
		Payload:  evaluation,
	})
}

// GetOffers lists released offers.
func (a *RecruiterAPI) GetOffers(ctx context.Context) ([]domain.Offer, error) {
	raw, err := a.list(ctx, "get offers", "/api/offers")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Offer, 0, len(raw))
	for _, o := range raw {
		out = append(out, domain.Offer{
			ID:                 str(o["id"]),
			Candidate:          str(o["candidate"]),
			Role:               str(o["role"]),
			CTC:                strOr(o, "0", "ctc"),
			Joining:            a.conv.date(o["joining"]),
			JoinRequestPending: truthy(o["joinRequestPending"]),
			Status:             domain.NormalizeOfferStatus(str(firstTruthy(o, "status"))),
		})
	}

	return out, nil
}

// ReleaseOffer creates an offer.
func (a *RecruiterAPI) ReleaseOffer(ctx context.Context, offer any) (any, error) {
	return a.passthrough(ctx, "release offer", http_.Request{
		Endpoint: "/api/offers",
		Method:   http_.MethodPost,
		Payload:  offer,
	})
}

// UpdateOffer replaces offer id.
func (a *RecruiterAPI) UpdateOffer(ctx context.Context, id string, offer any) (any, error) {
	return a.passthrough(ctx, "update offer", http_.Request{
		Endpoint: path("/api/offers/%s", id),
		Method:   http_.MethodPut,
		Payload:  offer,
	})
}
