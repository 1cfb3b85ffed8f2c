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

func TestAdminAPI_GetDashboardData(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/stats/admin-dashboard", http.StatusOK, gin.H{
		"kpis": []any{
			gin.H{"value": 120},
			gin.H{"value": 14, "change": "+3%"},
			gin.H{"value": "2"},
			gin.H{"value": 64.5, "change": "-1%"},
		},
		"velocityData":     []any{gin.H{"date": "Jan", "hires": 3}, gin.H{"date": "Feb"}},
		"userDistribution": []any{gin.H{"role": "recruiter", "count": 8}},
	})

	got, err := api.Admin.GetDashboardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.AdminDashboard{
		KPIs: domain.AdminKPIs{
			Requisitions:  domain.KPI{Value: "14", Trend: "+3%"},
			SecurityFlags: domain.KPI{Value: "2", Trend: "+0%"},
			Budget:        domain.KPI{Value: "64.5%", Trend: "-1%"},
			Users:         domain.KPI{Value: "120", Trend: "+0"},
		},
		Chart: []domain.HiringVelocity{{Name: "Jan", Hires: 3}, {Name: "Feb"}},
		Logs:  []domain.DistributionLog{{UserID: "recruiter", Role: "distribution", Status: 8}},
	}, got)
}

func TestAdminAPI_GetDashboardDataEmpty(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/stats/admin-dashboard", http.StatusOK, gin.H{})

	got, err := api.Admin.GetDashboardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.KPI{Value: "0%", Trend: "+0%"}, got.KPIs.Budget)
	assert.Equal(t, domain.KPI{Value: "0", Trend: "+0"}, got.KPIs.Users)
	assert.Empty(t, got.Chart)
	assert.NotNil(t, got.Chart)
	assert.Empty(t, got.Logs)
}

func TestAdminAPI_Users(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/users", http.StatusOK, []any{gin.H{"id": 1, "role": "admin"}})
	srv.Handle(http.MethodPut, "/api/users/1", http.StatusOK, gin.H{"id": 1, "role": "admin", "status": "INACTIVE"})

	users, err := api.Admin.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)

	user, err := api.Admin.UpdateUserStatus(context.Background(), "1", "INACTIVE")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusInactive, user.Status)
	assert.JSONEq(t, `{"status":"inactive"}`, string(srv.Last(t).Body))
}

func TestAdminAPI_AddToBlacklist(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/api/blacklist", http.StatusCreated, gin.H{"id": 2})

	entry := domain.Record{"email": "spam@example.com", "risk": "HIGH"}

	_, err := api.Admin.AddToBlacklist(context.Background(), entry)
	require.NoError(t, err)

	assert.JSONEq(t, `{"email":"spam@example.com","risk":"high"}`, string(srv.Last(t).Body))
	assert.Equal(t, "HIGH", entry["risk"], "caller entry must not be modified")

	_, err = api.Admin.AddToBlacklist(context.Background(), domain.Record{"risk": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"risk":3}`, string(srv.Last(t).Body))
}

func TestAdminAPI_GetOffersAnalytics(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/admin/offers/analytics", http.StatusOK, gin.H{
		"queue": []any{
			gin.H{"id": 5, "candidate": "Ann", "role": "SRE", "offer": 150000, "variance": -4, "auditStatus": "pending", "status": "open", "requiresApproval": 1},
			gin.H{"id": 6, "status": "approved"},
		},
		"budget":   []any{gin.H{"dept": "", "used": 40, "total": 100000}},
		"velocity": gin.H{"released": 10, "joined": 7},
	})

	got, err := api.Admin.GetOffersAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OffersAnalytics{
		Queue: []domain.OfferAudit{
			{ID: "5", Candidate: "Ann", Role: "SRE", Offer: 150000, Variance: -4, Status: "PENDING", RequiresApproval: true},
			{ID: "6", Status: "APPROVED"},
		},
		Budget:   []domain.DepartmentBudget{{Dept: "Unassigned", Used: 40, Total: 100000}},
		Velocity: domain.OfferVelocity{Released: 10, Joined: 7},
	}, got)
}

func TestAdminAPI_Passthrough(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/api/config/mpr", http.StatusOK, gin.H{"approvalLevels": 2})
	srv.Handle(http.MethodPost, "/api/admin/offers/o-1/approve", http.StatusOK, gin.H{"approved": true})
	srv.Handle(http.MethodDelete, "/api/blacklist/9", http.StatusOK, gin.H{"deleted": true})

	cfg, err := api.Admin.GetMprConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"approvalLevels": float64(2)}, cfg)

	_, err = api.Admin.AuthorizeOffer(context.Background(), "o-1")
	require.NoError(t, err)

	_, err = api.Admin.WhitelistUser(context.Background(), "9")
	require.NoError(t, err)

	assert.Empty(t, srv.Last(t).Body)
}
