package atssvc

import (
	"context"
	"maps"
	"strings"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// AdminAPI wraps the administrator endpoints.
type AdminAPI struct {
	*base
}

// GetDashboardData returns the administrator landing page figures.
func (a *AdminAPI) GetDashboardData(ctx context.Context) (domain.AdminDashboard, error) {
	var resp domain.Record

	if err := a.do(ctx, "get admin dashboard", http_.Request{Endpoint: "/api/stats/admin-dashboard"}, &resp); err != nil {
		return domain.AdminDashboard{}, err
	}

	// backend KPI order: users, requisitions, security flags, budget
	kpis := resp["kpis"]
	kpi := func(i int, trend string) (string, string) {
		k := record(at(kpis, i))

		return strOr(k, "0", "value"), strOr(k, trend, "change")
	}

	var out domain.AdminDashboard

	out.KPIs.Requisitions.Value, out.KPIs.Requisitions.Trend = kpi(1, "+0%")
	out.KPIs.SecurityFlags.Value, out.KPIs.SecurityFlags.Trend = kpi(2, "+0%")
	out.KPIs.Budget.Value, out.KPIs.Budget.Trend = kpi(3, "+0%")
	out.KPIs.Budget.Value += "%"
	out.KPIs.Users.Value, out.KPIs.Users.Trend = kpi(0, "+0")

	out.Chart = make([]domain.HiringVelocity, 0)
	for _, v := range records(resp["velocityData"]) {
		out.Chart = append(out.Chart, domain.HiringVelocity{Name: str(v["date"]), Hires: num(v["hires"])})
	}

	out.Logs = make([]domain.DistributionLog, 0)
	for _, d := range records(resp["userDistribution"]) {
		out.Logs = append(out.Logs, domain.DistributionLog{UserID: str(d["role"]), Role: "distribution", Status: num(d["count"])})
	}

	return out, nil
}

// GetUsers lists all accounts.
func (a *AdminAPI) GetUsers(ctx context.Context) ([]domain.User, error) {
	raw, err := a.list(ctx, "get users", "/api/users")
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(raw))
	for _, u := range raw {
		out = append(out, a.conv.user(u))
	}

	return out, nil
}

// CreateUser creates an account from user, which is sent as is.
func (a *AdminAPI) CreateUser(ctx context.Context, user any) (domain.User, error) {
	return a.userCall(ctx, "create user", http_.Request{
		Endpoint: "/api/users",
		Method:   http_.MethodPost,
		Payload:  user,
	})
}

// DeleteUser removes account id.
func (a *AdminAPI) DeleteUser(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "delete user", http_.Request{
		Endpoint: path("/api/users/%s", id),
		Method:   http_.MethodDelete,
	})
}

// UpdateUserStatus sets the status of account id. The backend expects
// lower-case status names.
func (a *AdminAPI) UpdateUserStatus(ctx context.Context, id, status string) (domain.User, error) {
	return a.userCall(ctx, "update user status", http_.Request{
		Endpoint: path("/api/users/%s", id),
		Method:   http_.MethodPut,
		Payload:  map[string]string{"status": strings.ToLower(status)},
	})
}

func (a *AdminAPI) userCall(ctx context.Context, op string, r http_.Request) (domain.User, error) {
	var resp domain.Record

	if err := a.do(ctx, op, r, &resp); err != nil {
		return domain.User{}, err
	}

	return a.conv.user(resp), nil
}

// GetMprConfig returns the MPR workflow configuration.
func (a *AdminAPI) GetMprConfig(ctx context.Context) (any, error) {
	return a.passthrough(ctx, "get mpr config", http_.Request{Endpoint: "/api/config/mpr"})
}

// UpdateMprConfig replaces the MPR workflow configuration.
func (a *AdminAPI) UpdateMprConfig(ctx context.Context, cfg any) (any, error) {
	return a.passthrough(ctx, "update mpr config", http_.Request{
		Endpoint: "/api/config/mpr",
		Method:   http_.MethodPut,
		Payload:  cfg,
	})
}

// GetBlacklist lists blacklisted candidates.
func (a *AdminAPI) GetBlacklist(ctx context.Context) ([]domain.Record, error) {
	return a.list(ctx, "get blacklist", "/api/blacklist")
}

// AddToBlacklist blacklists entry. A string risk level is lower-cased.
func (a *AdminAPI) AddToBlacklist(ctx context.Context, entry domain.Record) (any, error) {
	payload := maps.Clone(entry)
	if payload == nil {
		payload = domain.Record{}
	}

	if risk, ok := payload["risk"].(string); ok {
		payload["risk"] = strings.ToLower(risk)
	}

	return a.passthrough(ctx, "add to blacklist", http_.Request{
		Endpoint: "/api/blacklist",
		Method:   http_.MethodPost,
		Payload:  payload,
	})
}

// WhitelistUser removes blacklist entry id.
func (a *AdminAPI) WhitelistUser(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "whitelist user", http_.Request{
		Endpoint: path("/api/blacklist/%s", id),
		Method:   http_.MethodDelete,
	})
}

// GetOffersAnalytics returns the offer approval queue and budget usage.
func (a *AdminAPI) GetOffersAnalytics(ctx context.Context) (domain.OffersAnalytics, error) {
	var resp domain.Record

	if err := a.do(ctx, "get offers analytics", http_.Request{Endpoint: "/api/admin/offers/analytics"}, &resp); err != nil {
		return domain.OffersAnalytics{}, err
	}

	out := domain.OffersAnalytics{
		Queue:  make([]domain.OfferAudit, 0),
		Budget: make([]domain.DepartmentBudget, 0),
	}

	for _, q := range records(resp["queue"]) {
		out.Queue = append(out.Queue, domain.OfferAudit{
			ID:               str(q["id"]),
			Candidate:        str(firstTruthy(q, "candidate")),
			Role:             str(firstTruthy(q, "role")),
			Offer:            num(q["offer"]),
			Variance:         num(q["variance"]),
			Status:           strings.ToUpper(str(firstTruthy(q, "auditStatus", "status"))),
			RequiresApproval: truthy(q["requiresApproval"]),
		})
	}

	for _, b := range records(resp["budget"]) {
		dept := "Unassigned"
		if v := firstTruthy(b, "dept"); v != nil {
			dept = str(v)
		}

		out.Budget = append(out.Budget, domain.DepartmentBudget{
			Dept:  dept,
			Used:  num(b["used"]),
			Total: num(b["total"]),
		})
	}

	velocity := record(resp["velocity"])
	out.Velocity = domain.OfferVelocity{
		Released: num(velocity["released"]),
		Joined:   num(velocity["joined"]),
		Declined: num(velocity["declined"]),
	}

	return out, nil
}

// AuthorizeOffer approves offer id.
func (a *AdminAPI) AuthorizeOffer(ctx context.Context, id string) (any, error) {
	return a.passthrough(ctx, "authorize offer", http_.Request{
		Endpoint: path("/api/admin/offers/%s/approve", id),
		Method:   http_.MethodPost,
	})
}
