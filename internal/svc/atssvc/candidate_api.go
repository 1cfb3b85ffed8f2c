package atssvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// CandidateAPI wraps the candidate portal endpoints.
type CandidateAPI struct {
	*base
}

// GetProfile returns the profile of the signed-in candidate.
func (a *CandidateAPI) GetProfile(ctx context.Context) (domain.CandidateProfile, error) {
	var resp domain.Record

	if err := a.do(ctx, "get candidate profile", http_.Request{Endpoint: "/api/candidate/profile"}, &resp); err != nil {
		return domain.CandidateProfile{}, err
	}

	out := domain.CandidateProfile{
		Name:      str(firstTruthy(resp, "name")),
		Role:      str(firstTruthy(resp, "role")),
		Skills:    strs(resp["skills"]),
		Documents: make([]domain.CandidateDocument, 0),
	}

	for _, d := range records(resp["documents"]) {
		status := domain.VerificationPending
		if truthy(d["verified"]) || truthy(d["parsed"]) {
			status = domain.VerificationVerified
		}

		out.Documents = append(out.Documents, domain.CandidateDocument{
			ID:     str(d["id"]),
			Name:   str(d["name"]),
			Type:   str(d["type"]),
			Status: status,
			Date:   a.conv.date(d["uploaded_at"]),
		})
	}

	return out, nil
}

// UpdateProfile saves profile changes.
func (a *CandidateAPI) UpdateProfile(ctx context.Context, profile any) (any, error) {
	return a.passthrough(ctx, "update candidate profile", http_.Request{
		Endpoint: "/api/candidate/profile",
		Method:   http_.MethodPut,
		Payload:  profile,
	})
}

// UploadDocument sends upload as a multipart form.
func (a *CandidateAPI) UploadDocument(ctx context.Context, upload domain.Upload) (any, error) {
	documentType := upload.DocumentType
	if documentType == "" {
		documentType = domain.DefaultDocumentType
	}

	form := new(http_.MultipartForm).
		AddFile("file", upload.Filename, upload.ContentType, upload.Content).
		AddField("document_type", documentType).
		AddField("parse_resume", strconv.FormatBool(!upload.SkipResumeParsing))

	return a.passthrough(ctx, "upload document", http_.Request{
		Endpoint: "/api/candidate/documents/upload",
		Method:   http_.MethodPost,
		Payload:  form,
	})
}

// DeleteDocument removes document id.
func (a *CandidateAPI) DeleteDocument(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "delete document", http_.Request{
		Endpoint: path("/api/candidate/documents/%s", id),
		Method:   http_.MethodDelete,
	})
}

// AutoFillForJob returns application fields prefilled from the candidate's
// parsed documents.
func (a *CandidateAPI) AutoFillForJob(ctx context.Context, jobID string) (any, error) {
	return a.passthrough(ctx, "auto-fill application", http_.Request{
		Endpoint: path("/api/jobs/%s/auto-fill", jobID),
	})
}

// ApplyForJob applies to job jobID. A nil application sends no body.
func (a *CandidateAPI) ApplyForJob(ctx context.Context, jobID string, application any) (any, error) {
	return a.passthrough(ctx, "apply for job", http_.Request{
		Endpoint: path("/api/jobs/%s/apply", jobID),
		Method:   http_.MethodPost,
		Payload:  application,
	})
}

// GetApplicationStatus returns the candidate's current application. Without
// job details only the raw response is set.
func (a *CandidateAPI) GetApplicationStatus(ctx context.Context) (domain.ApplicationStatus, error) {
	var resp any

	if err := a.do(ctx, "get application status", http_.Request{Endpoint: "/api/candidate/application-status"}, &resp); err != nil {
		return domain.ApplicationStatus{}, err
	}

	data := record(resp)
	if !truthy(data["jobDetails"]) {
		return domain.ApplicationStatus{Data: data}, nil
	}

	job := record(data["jobDetails"])

	out := domain.ApplicationStatus{
		JobDetails: &domain.ApplicationJob{
			ID:               str(job["id"]),
			Title:            str(job["title"]),
			Department:       str(job["department"]),
			Location:         str(job["location"]),
			Summary:          str(job["summary"]),
			Responsibilities: strs(job["responsibilities"]),
			Skills:           strs(job["skills"]),
		},
		PipelineSteps: make([]domain.PipelineStep, 0),
		Data:          data,
	}

	for _, step := range records(data["pipelineSteps"]) {
		label := "Step"
		if v := firstTruthy(step, "label", "name"); v != nil {
			label = str(v)
		}

		out.PipelineSteps = append(out.PipelineSteps, domain.PipelineStep{
			Label:  label,
			Date:   str(firstTruthy(step, "date")),
			Status: domain.NormalizeStepStatus(str(firstTruthy(step, "status"))),
		})
	}

	if truthy(data["offer"]) {
		offer := record(data["offer"])

		out.Offer = &domain.CandidateOffer{
			ID:            str(offer["id"]),
			OfferCode:     str(offer["offerCode"]),
			Status:        strings.ToLower(str(offer["status"])),
			CTCTotal:      num(offer["ctcTotal"]),
			DateOfJoining: str(offer["dateOfJoining"]),
			ValidityDays:  num(offer["validityDays"]),
			OfferedAt:     str(offer["offeredAt"]),
			JoinRequest:   firstTruthy(offer, "joinRequest"),
		}
	}

	return out, nil
}

// DecideOffer accepts or declines offer id.
func (a *CandidateAPI) DecideOffer(ctx context.Context, id string, decision domain.OfferDecision) (any, error) {
	if !decision.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOfferDecision, decision)
	}

	return a.passthrough(ctx, "decide offer", http_.Request{
		Endpoint: path("/api/candidate/offers/%s/decision", id),
		Method:   http_.MethodPut,
		Payload:  map[string]domain.OfferDecision{"decision": decision},
	})
}

// RequestJoining asks to confirm the joining date of offer id.
func (a *CandidateAPI) RequestJoining(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "request joining", http_.Request{
		Endpoint: path("/api/candidate/offers/%s/join-request", id),
		Method:   http_.MethodPost,
	})
}
