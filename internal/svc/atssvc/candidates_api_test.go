package atssvc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

func TestCandidatesAPI_GetAll(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/candidates", http.StatusOK, []any{
		gin.H{
			"id":            12,
			"name":          "Grace",
			"email":         "grace@example.com",
			"currentRole":   "SRE",
			"roleApplied":   "ignored",
			"status":        "screening",
			"matchScore":    "87.5",
			"skills":        []string{"go", "k8s"},
			"currentCtc":    1200000,
			"experience":    6,
			"aadhaarStatus": "verified",
			"panStatus":     "unknown",
			"resumeUrl":     "https://cdn.example.com/cv.pdf",
		},
		gin.H{},
	})

	got, err := api.Candidates.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.CandidateArtifact{
		ID:            "12",
		Name:          "Grace",
		Email:         "grace@example.com",
		RoleApplied:   "SRE",
		Status:        domain.CandidateStatusVetting,
		MatchScore:    87.5,
		SkillDNA:      []string{"go", "k8s"},
		CurrentCTC:    1200000,
		TotalExp:      6,
		AadhaarStatus: domain.VerificationVerified,
		PanStatus:     domain.VerificationPending,
		ResumeContent: "https://cdn.example.com/cv.pdf",
	}, got[0])

	assert.Equal(t, domain.CandidateArtifact{
		Status:        domain.CandidateStatusApplied,
		SkillDNA:      []string{},
		AadhaarStatus: domain.VerificationPending,
		PanStatus:     domain.VerificationPending,
	}, got[1])
}

func TestCandidatesAPI_NullList(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.HandleRaw(http.MethodGet, "/api/candidates", http.StatusOK, "application/json", "null")

	got, err := api.Candidates.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidatesAPI_Screen(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/api/candidates/c 1/screen", http.StatusOK, gin.H{"score": 91, "summary": "strong"})

	got, err := api.Candidates.Screen(context.Background(), "c 1")
	require.NoError(t, err)

	assert.Equal(t, domain.ScreeningResult{Score: 91, Summary: "strong"}, got)
	assert.Equal(t, "/api/candidates/c%201/screen", srv.Last(t).EscapedPath)
}

func TestCandidatesAPI_UpdateStatus(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPut, "/api/candidates/5/status", http.StatusOK, gin.H{"ok": true})

	_, err := api.Candidates.UpdateStatus(context.Background(), "5", "shortlisted", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"shortlisted"}`, string(srv.Last(t).Body))

	_, err = api.Recruiter.UpdateCandidateStatus(context.Background(), "5", "rejected", "no show")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"rejected","notes":"no show"}`, string(srv.Last(t).Body))
}

func TestCandidatesAPI_Delete(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodDelete, "/api/candidates/5", http.StatusNoContent, nil)

	out, err := api.Candidates.Delete(context.Background(), "5")
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 1, srv.Count(http.MethodDelete, "/api/candidates/5"))
}
