package atssvc_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

func TestManagerAPI_GetHubData(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/stats/manager-dashboard", http.StatusOK, gin.H{"openRoles": 3})
	srv.Handle(http.MethodGet, "/api/manager/pipeline", http.StatusOK, []any{gin.H{"title": "QA"}})

	got, err := api.Manager.GetHubData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.ManagerHub{
		Stats:        map[string]any{"openRoles": float64(3)},
		Requisitions: []any{map[string]any{"title": "QA"}},
	}, got)
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/api/stats/manager-dashboard"))
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/api/manager/pipeline"))
}

func TestManagerAPI_GetHubDataFailure(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/stats/manager-dashboard", http.StatusOK, gin.H{"openRoles": 3})
	srv.Handle(http.MethodGet, "/api/manager/pipeline", http.StatusInternalServerError, gin.H{"detail": "pipeline unavailable"})

	got, err := api.Manager.GetHubData(context.Background())
	require.Error(t, err)
	assert.Equal(t, "pipeline unavailable", err.Error())
	assert.Equal(t, domain.ManagerHub{}, got)
}

func TestManagerAPI_GetMyRequests(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/mpr/my-requests", http.StatusOK, []any{gin.H{
		"id": 1, "requisitionCode": "MPR-1A2B", "jobTitle": "QA", "department": "Eng", "status": "pending",
		"positionsRequested": 2, "positionsApproved": nil, "createdAt": "2025-01-01T00:00:00",
	}})

	got, err := api.Manager.GetMyRequests(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.ManagerRequest{{
		ID: "1", RequisitionCode: "MPR-1A2B", JobTitle: "QA", Department: "Eng", Status: "pending",
		PositionsRequested: 2, CreatedAt: "2025-01-01T00:00:00",
	}}, got)
}

func TestManagerAPI_GetInterviews(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/manager/interviews", http.StatusOK, []any{
		gin.H{"id": 4, "candidate": "Lee", "type": "technical", "status": "scheduled"},
	})

	got, err := api.Manager.GetInterviews(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.ManagerInterview{{ID: "4", Candidate: "Lee", Type: "technical", Status: "SCHEDULED"}}, got)
}

func TestManagerAPI_GetPipelineCandidates(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/manager/pipeline-candidates", http.StatusOK, []any{gin.H{"name": "Lee"}})

	got, err := api.Manager.GetPipelineCandidates(context.Background(), "QA & Test", "positions closed")
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{{"name": "Lee"}}, got)

	query, err := url.ParseQuery(srv.Last(t).Query)
	require.NoError(t, err)
	assert.Equal(t, "QA & Test", query.Get("job_title"))
	assert.Equal(t, "positions closed", query.Get("stage"))
}

func TestManagerAPI_SubmitFeedback(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/api/manager/interviews/feedback", http.StatusOK, gin.H{"saved": true})

	_, err := api.Manager.SubmitFeedback(context.Background(), "12", domain.Record{"rating": 4, "comments": "solid"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"interviewId":"12","rating":4,"comments":"solid"}`, string(srv.Last(t).Body))
}
