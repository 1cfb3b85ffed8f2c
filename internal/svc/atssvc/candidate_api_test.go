package atssvc_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

func TestCandidateAPI_GetProfile(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/candidate/profile", http.StatusOK, gin.H{
		"name":   "Ann",
		"skills": []string{"sql"},
		"documents": []any{
			gin.H{"id": 1, "name": "cv.pdf", "type": "resume", "parsed": true, "uploaded_at": "2025-04-01T09:30:00.123456"},
			gin.H{"id": 2, "name": "pan.png", "type": "pan", "verified": false},
		},
	})

	got, err := api.Candidate.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.CandidateProfile{
		Name:   "Ann",
		Skills: []string{"sql"},
		Documents: []domain.CandidateDocument{
			{ID: "1", Name: "cv.pdf", Type: "resume", Status: domain.VerificationVerified, Date: "2025-04-01"},
			{ID: "2", Name: "pan.png", Type: "pan", Status: domain.VerificationPending},
		},
	}, got)
}

func TestCandidateAPI_UploadDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		upload domain.Upload
		want   map[string]string
	}{
		{
			name:   "defaults",
			upload: domain.Upload{Filename: "cv.pdf", Content: strings.NewReader("%PDF")},
			want:   map[string]string{"document_type": "resume", "parse_resume": "true", "file": "%PDF"},
		},
		{
			name: "explicit",
			upload: domain.Upload{
				Filename: "pan.png", ContentType: "image/png", Content: strings.NewReader("PNG"),
				DocumentType: "pan", SkipResumeParsing: true,
			},
			want: map[string]string{"document_type": "pan", "parse_resume": "false", "file": "PNG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, srv := newAPI(t)

			got := map[string]string{}

			srv.HandleFunc(http.MethodPost, "/api/candidate/documents/upload", func(c *gin.Context) {
				got["document_type"] = c.PostForm("document_type")
				got["parse_resume"] = c.PostForm("parse_resume")

				if fh, err := c.FormFile("file"); err == nil {
					f, _ := fh.Open()
					data, _ := io.ReadAll(f)
					_ = f.Close()

					got["file"] = string(data)
				}

				c.JSON(http.StatusOK, gin.H{"id": "doc"})
			})

			out, err := api.Candidate.UploadDocument(context.Background(), tt.upload)
			require.NoError(t, err)

			assert.Equal(t, map[string]any{"id": "doc"}, out)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateAPI_GetApplicationStatus(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/candidate/application-status", http.StatusOK, gin.H{
		"jobDetails": gin.H{"id": 3, "title": "QA", "skills": []string{"selenium"}, "responsibilities": "n/a"},
		"pipelineSteps": []any{
			gin.H{"label": "Applied", "date": "2025-01-01", "status": "COMPLETED"},
			gin.H{"name": "Interview", "status": "in_progress"},
			gin.H{},
		},
		"offer":     gin.H{"id": 9, "offerCode": "OF-9", "status": "PENDING", "ctcTotal": "1500000", "validityDays": 7},
		"applicant": "Ann",
	})

	got, err := api.Candidate.GetApplicationStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &domain.ApplicationJob{
		ID: "3", Title: "QA", Skills: []string{"selenium"}, Responsibilities: []string{},
	}, got.JobDetails)

	assert.Equal(t, []domain.PipelineStep{
		{Label: "Applied", Date: "2025-01-01", Status: domain.StepDone},
		{Label: "Interview", Status: domain.StepActive},
		{Label: "Step", Status: domain.StepPending},
	}, got.PipelineSteps)

	assert.Equal(t, &domain.CandidateOffer{
		ID: "9", OfferCode: "OF-9", Status: "pending", CTCTotal: 1500000, ValidityDays: 7,
	}, got.Offer)

	assert.Equal(t, "Ann", got.Data["applicant"])
}

func TestCandidateAPI_GetApplicationStatusWithoutJob(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/candidate/application-status", http.StatusOK, gin.H{"message": "No active application"})

	got, err := api.Candidate.GetApplicationStatus(context.Background())
	require.NoError(t, err)

	assert.Nil(t, got.JobDetails)
	assert.Nil(t, got.Offer)
	assert.Nil(t, got.PipelineSteps)
	assert.Equal(t, domain.Record{"message": "No active application"}, got.Data)
}

func TestCandidateAPI_DecideOffer(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPut, "/api/candidate/offers/9/decision", http.StatusOK, gin.H{"status": "accepted"})

	_, err := api.Candidate.DecideOffer(context.Background(), "9", domain.OfferAccepted)
	require.NoError(t, err)
	assert.JSONEq(t, `{"decision":"accepted"}`, string(srv.Last(t).Body))

	_, err = api.Candidate.DecideOffer(context.Background(), "9", "maybe")
	require.ErrorIs(t, err, domain.ErrInvalidOfferDecision)
	assert.Len(t, srv.Requests(), 1)
}

func TestCandidateAPI_ApplyForJob(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/api/jobs/3/apply", http.StatusCreated, gin.H{"applicationId": 1})
	srv.Handle(http.MethodGet, "/api/jobs/3/auto-fill", http.StatusOK, gin.H{"name": "Ann"})

	_, err := api.Candidate.ApplyForJob(context.Background(), "3", nil)
	require.NoError(t, err)

	req := srv.Last(t)
	assert.Empty(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))

	fill, err := api.Candidate.AutoFillForJob(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Ann"}, fill)
}
