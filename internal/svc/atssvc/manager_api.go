package atssvc

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// ManagerAPI wraps the hiring manager endpoints.
type ManagerAPI struct {
	*base
}

// GetHubData fetches the manager dashboard statistics and pipeline
// concurrently. The first failure cancels the other request and is returned.
func (a *ManagerAPI) GetHubData(ctx context.Context) (domain.ManagerHub, error) {
	var hub domain.ManagerHub

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.do(gctx, "get manager stats", http_.Request{Endpoint: "/api/stats/manager-dashboard"}, &hub.Stats)
	})

	g.Go(func() error {
		return a.do(gctx, "get manager pipeline", http_.Request{Endpoint: "/api/manager/pipeline"}, &hub.Requisitions)
	})

	if err := g.Wait(); err != nil {
		return domain.ManagerHub{}, err //nolint:wrapcheck
	}

	return hub, nil
}

// GetMyRequests lists the requisitions raised by the current manager.
func (a *ManagerAPI) GetMyRequests(ctx context.Context) ([]domain.ManagerRequest, error) {
	raw, err := a.list(ctx, "get my requests", "/api/mpr/my-requests")
	if err != nil {
		return nil, err
	}

	out := make([]domain.ManagerRequest, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.ManagerRequest{
			ID:                 str(r["id"]),
			RequisitionCode:    str(r["requisitionCode"]),
			JobTitle:           str(r["jobTitle"]),
			Department:         str(r["department"]),
			Status:             str(r["status"]),
			PositionsRequested: num(r["positionsRequested"]),
			PositionsApproved:  num(r["positionsApproved"]),
			CreatedAt:          str(r["createdAt"]),
		})
	}

	return out, nil
}

// GetInterviews lists interviews the current manager sits on.
func (a *ManagerAPI) GetInterviews(ctx context.Context) ([]domain.ManagerInterview, error) {
	raw, err := a.list(ctx, "get manager interviews", "/api/manager/interviews")
	if err != nil {
		return nil, err
	}

	out := make([]domain.ManagerInterview, 0, len(raw))
	for _, i := range raw {
		out = append(out, domain.ManagerInterview{
			ID:        str(i["id"]),
			Candidate: str(i["candidate"]),
			Role:      str(i["role"]),
			Time:      str(i["time"]),
			Type:      str(i["type"]),
			Status:    strings.ToUpper(str(firstTruthy(i, "status"))),
		})
	}

	return out, nil
}

// GetPipelineCandidates lists the candidates of one job in one stage.
func (a *ManagerAPI) GetPipelineCandidates(ctx context.Context, jobTitle, stage string) ([]domain.Record, error) {
	query := url.Values{}
	query.Set("job_title", jobTitle)
	query.Set("stage", stage)

	return a.list(ctx, "get pipeline candidates", "/api/manager/pipeline-candidates?"+query.Encode())
}

// CreateMpr raises a new manpower requisition.
func (a *ManagerAPI) CreateMpr(ctx context.Context, mpr any) (any, error) {
	return a.passthrough(ctx, "create mpr", http_.Request{
		Endpoint: "/api/mpr",
		Method:   http_.MethodPost,
		Payload:  mpr,
	})
}

// SubmitFeedback records feedback on interview id. Keys of feedback take
// precedence over the interview id.
func (a *ManagerAPI) SubmitFeedback(ctx context.Context, id string, feedback domain.Record) (any, error) {
	payload := domain.Record{"interviewId": id}
	for k, v := range feedback {
		payload[k] = v
	}

	return a.passthrough(ctx, "submit interview feedback", http_.Request{
		Endpoint: "/api/manager/interviews/feedback",
		Method:   http_.MethodPost,
		Payload:  payload,
	})
}
