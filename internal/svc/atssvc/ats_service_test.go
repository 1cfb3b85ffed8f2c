package atssvc_test

import (
	"testing"

	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
	"github.com/mkrupp/hirepulse-client/internal/svc/atssvc"
	"github.com/mkrupp/hirepulse-client/internal/testutil/fakeapi"
)

func newAPI(t *testing.T) (*atssvc.API, *fakeapi.Server) {
	t.Helper()

	srv := fakeapi.New(t)
	client := http_.NewClient(http_.ClientConfig{BaseURL: srv.URL}, nil, srv.Client())

	return atssvc.New(client, atssvc.Config{DateLayout: "2006-01-02"}), srv
}
