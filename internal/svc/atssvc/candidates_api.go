package atssvc

import (
	"context"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// CandidatesAPI wraps the recruiter candidate pipeline endpoints.
type CandidatesAPI struct {
	*base
}

// GetAll lists every candidate.
func (a *CandidatesAPI) GetAll(ctx context.Context) ([]domain.CandidateArtifact, error) {
	raw, err := a.list(ctx, "get candidates", "/api/candidates")
	if err != nil {
		return nil, err
	}

	out := make([]domain.CandidateArtifact, 0, len(raw))
	for _, c := range raw {
		out = append(out, candidate(c))
	}

	return out, nil
}

// Screen runs the AI screening of candidate id.
func (a *CandidatesAPI) Screen(ctx context.Context, id string) (domain.ScreeningResult, error) {
	var resp domain.Record

	err := a.do(ctx, "screen candidate", http_.Request{
		Endpoint: path("/api/candidates/%s/screen", id),
		Method:   http_.MethodPost,
	}, &resp)
	if err != nil {
		return domain.ScreeningResult{}, err
	}

	return domain.ScreeningResult{
		Score:   num(resp["score"]),
		Summary: str(resp["summary"]),
	}, nil
}

type statusUpdate struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateStatus moves candidate id to status. Empty notes are omitted.
func (a *CandidatesAPI) UpdateStatus(ctx context.Context, id, status, notes string) (any, error) {
	return a.passthrough(ctx, "update candidate status", http_.Request{
		Endpoint: path("/api/candidates/%s/status", id),
		Method:   http_.MethodPut,
		Payload:  statusUpdate{Status: status, Notes: notes},
	})
}

// Delete removes candidate id.
func (a *CandidatesAPI) Delete(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "delete candidate", http_.Request{
		Endpoint: path("/api/candidates/%s", id),
		Method:   http_.MethodDelete,
	})
}

func candidate(c domain.Record) domain.CandidateArtifact {
	return domain.CandidateArtifact{
		ID:            str(c["id"]),
		Name:          str(c["name"]),
		Email:         str(c["email"]),
		RoleApplied:   str(first(c, "currentRole", "roleApplied")),
		Status:        domain.NormalizeCandidateStatus(strOr(c, "applied", "status")),
		MatchScore:    num(c["matchScore"]),
		AppliedDate:   str(c["appliedDate"]),
		SkillDNA:      strs(c["skills"]),
		CurrentCTC:    num(c["currentCtc"]),
		ExpectedCTC:   num(c["expectedCtc"]),
		NoticePeriod:  num(c["noticePeriod"]),
		TotalExp:      num(c["experience"]),
		AadhaarStatus: domain.NormalizeVerification(str(c["aadhaarStatus"])),
		PanStatus:     domain.NormalizeVerification(str(c["panStatus"])),
		ResumeContent: str(c["resumeUrl"]),
	}
}
