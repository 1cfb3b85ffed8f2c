package atssvc

import (
	"context"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// JobsAPI wraps the public job endpoints.
type JobsAPI struct {
	*base
}

// GetAll lists the public job board.
func (a *JobsAPI) GetAll(ctx context.Context) ([]domain.JobRequisition, error) {
	raw, err := a.list(ctx, "get jobs", "/api/jobs/public")
	if err != nil {
		return nil, err
	}

	out := make([]domain.JobRequisition, 0, len(raw))
	for _, j := range raw {
		out = append(out, requisition(j))
	}

	return out, nil
}

// Create opens a requisition. job is sent as is.
func (a *JobsAPI) Create(ctx context.Context, job any) (domain.JobRequisition, error) {
	var resp domain.Record

	err := a.do(ctx, "create job", http_.Request{
		Endpoint: "/api/jobs",
		Method:   http_.MethodPost,
		Payload:  job,
	}, &resp)
	if err != nil {
		return domain.JobRequisition{}, err
	}

	return requisition(resp), nil
}

// GenerateDescription asks the backend to draft the content of a job titled
// title. It never fails: any error or an empty draft is replaced by
// GenerateJobContent.
func (a *JobsAPI) GenerateDescription(ctx context.Context, title string) domain.JobContent {
	var resp domain.Record

	err := a.do(ctx, "generate job description", http_.Request{
		Endpoint: "/api/jobs/generate-description",
		Method:   http_.MethodPost,
		Payload:  map[string]string{"title": title},
	}, &resp)
	if err != nil {
		a.log.WarnContext(ctx, "job description generation unavailable, using local draft", "error", err)

		return GenerateJobContent(title)
	}

	content := domain.JobContent{
		Summary:     str(resp["summary"]),
		Description: str(resp["description"]),
	}

	if content.Summary == "" && content.Description == "" {
		a.log.WarnContext(ctx, "job description generation returned nothing, using local draft")

		return GenerateJobContent(title)
	}

	return content
}

func requisition(j domain.Record) domain.JobRequisition {
	return domain.JobRequisition{
		ID:            str(j["id"]),
		Title:         str(j["title"]),
		Department:    str(j["department"]),
		HiringManager: str(j["hiringManager"]),
		Status:        domain.NormalizeJobStatus(str(firstTruthy(j, "status"))),
		Applicants:    num(j["applicants"]),
		Priority:      domain.JobPriorityNormal,
		PostedDate:    str(first(j, "postedAt", "posted")),
	}
}
