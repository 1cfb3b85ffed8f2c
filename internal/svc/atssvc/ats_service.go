// Package atssvc adapts the HirePulse backend API to the typed view-shapes of
// internal/domain. Every facade issues fixed endpoint and method pairs and
// coerces loosely typed responses into complete records.
package atssvc

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// Config holds configuration for the domain adapter.
type Config struct {
	// DateLayout is the time layout used for dates shown to users
	DateLayout string `env:"DATE_LAYOUT" default:"1/2/2006"`

	// AvatarBaseURL is the placeholder avatar service; the user key is sent as ?u=
	AvatarBaseURL string `env:"AVATAR_BASE_URL" default:"https://i.pravatar.cc/150"`
}

// Requester performs a single backend call. *http_.Client implements it.
type Requester interface {
	Do(ctx context.Context, r http_.Request, out any) error
}

var _ Requester = (*http_.Client)(nil)

// API groups the role-specific facades.
type API struct {
	Auth       *AuthAPI
	Candidates *CandidatesAPI
	Jobs       *JobsAPI
	Admin      *AdminAPI
	Recruiter  *RecruiterAPI
	Manager    *ManagerAPI
	Candidate  *CandidateAPI
}

// New creates the facades on top of client.
func New(client Requester, cfg Config) *API {
	if cfg.DateLayout == "" {
		cfg.DateLayout = "1/2/2006"
	}

	if cfg.AvatarBaseURL == "" {
		cfg.AvatarBaseURL = "https://i.pravatar.cc/150"
	}

	b := &base{
		client: client,
		conv:   converter{dateLayout: cfg.DateLayout, avatarBaseURL: cfg.AvatarBaseURL},
	}

	candidates := &CandidatesAPI{b.named("candidates_api")}

	return &API{
		Auth:       &AuthAPI{b.named("auth_api")},
		Candidates: candidates,
		Jobs:       &JobsAPI{b.named("jobs_api")},
		Admin:      &AdminAPI{b.named("admin_api")},
		Recruiter:  &RecruiterAPI{base: b.named("recruiter_api"), candidates: candidates},
		Manager:    &ManagerAPI{b.named("manager_api")},
		Candidate:  &CandidateAPI{b.named("candidate_api")},
	}
}

type base struct {
	client Requester
	conv   converter
	log    logging.Logger
}

func (b *base) named(name string) *base {
	return &base{
		client: b.client,
		conv:   b.conv,
		log:    logging.GetLogger("svc.atssvc." + name),
	}
}

// do performs one call. Transport errors are returned unwrapped so that
// their message stays presentable.
func (b *base) do(ctx context.Context, op string, r http_.Request, out any) (err error) {
	defer func() {
		if err != nil {
			b.log.DebugContext(ctx, op+" failed", "error", err)
		} else {
			b.log.DebugContext(ctx, op+" done")
		}
	}()

	return b.client.Do(ctx, r, out)
}

// passthrough performs a call whose response is returned as decoded JSON.
func (b *base) passthrough(ctx context.Context, op string, r http_.Request) (any, error) {
	var out any
	if err := b.do(ctx, op, r, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// list fetches an array endpoint. A null response is an empty list.
func (b *base) list(ctx context.Context, op, endpoint string) ([]domain.Record, error) {
	var resp any

	if err := b.do(ctx, op, http_.Request{Endpoint: endpoint}, &resp); err != nil {
		return nil, err
	}

	return records(resp), nil
}

// path formats an endpoint with path-escaped ids.
func path(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}

	return fmt.Sprintf(format, args...)
}
