package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	"github.com/mkrupp/hirepulse-client/internal/repo/token"
	"github.com/mkrupp/hirepulse-client/internal/session"
	"github.com/mkrupp/hirepulse-client/internal/svc/atssvc"
	"github.com/mkrupp/hirepulse-client/internal/svc/sessionsvc"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingFlag    = errors.New("missing required flag")
)

type environment struct {
	api      *atssvc.API
	sessions *sessionsvc.SessionService
	tokens   token.Reader
	out      io.Writer
}

func (e *environment) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}

type command struct {
	help string
	run  func(ctx context.Context, env *environment, args []string) error
}

//nolint:gochecknoglobals
var commands = map[string]command{
	"login":                {"sign in and persist the session token", runLogin},
	"register":             {"create an account and sign in", runRegister},
	"logout":               {"drop the persisted session token", runLogout},
	"whoami":               {"show the current session", runWhoami},
	"forgot-password":      {"request a password reset mail", runForgotPassword},
	"jobs":                 {"list public job openings", runJobs},
	"candidates":           {"list candidates", runCandidates},
	"generate-description": {"draft a job description for a title", runGenerateDescription},
	"upload":               {"upload a document to the candidate profile", runUpload},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func parseFlags(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for _, name := range required {
		if f := fs.Lookup(name); f == nil || f.Value.String() == "" {
			return fmt.Errorf("%w: -%s", errMissingFlag, name)
		}
	}

	return nil
}

type sessionView struct {
	State   sessionsvc.State        `json:"state"`
	User    *domain.User            `json:"user,omitempty"`
	Landing string                  `json:"landing,omitempty"`
	Token   *domain.AuthTokenClaims `json:"token,omitempty"`
	Expired bool                    `json:"expired,omitempty"`
}

func currentSession(ctx context.Context, env *environment) sessionView {
	view := sessionView{State: env.sessions.State()}

	if user, ok := env.sessions.User(); ok {
		view.User = &user
		view.Landing = sessionsvc.LandingPage(user.Role)
	}

	if tkn, ok, err := env.tokens.GetToken(ctx); err == nil && ok {
		if claims, err := session.Inspect(tkn); err == nil {
			view.Token = &claims
			view.Expired = claims.Expired(time.Now())
		}
	}

	return view
}

func runLogin(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("HIREPULSE_PASSWORD"), "account password")

	if err := parseFlags(fs, args, "email", "password"); err != nil {
		return err
	}

	if _, err := env.sessions.Login(ctx, *email, *password); err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(currentSession(ctx, env))
}

func runRegister(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", os.Getenv("HIREPULSE_PASSWORD"), "account password")
	confirm := fs.String("confirm", "", "repeat the password; defaults to -password")
	roleTag := fs.String("role", string(domain.RoleCandidate), "role tag or backend role")

	if err := parseFlags(fs, args, "name", "email", "password"); err != nil {
		return err
	}

	if *confirm != "" && *confirm != *password {
		return errPasswordMismatch
	}

	role, ok := domain.ParseRole(*roleTag)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRole, *roleTag)
	}

	if _, err := env.sessions.Register(ctx, *name, *email, *password, role); err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(currentSession(ctx, env))
}

var errPasswordMismatch = errors.New("passwords do not match")

func runLogout(ctx context.Context, env *environment, _ []string) error {
	if err := env.sessions.Logout(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(currentSession(ctx, env))
}

func runWhoami(ctx context.Context, env *environment, _ []string) error {
	return env.print(currentSession(ctx, env))
}

func runForgotPassword(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	email := fs.String("email", "", "account email")

	if err := parseFlags(fs, args, "email"); err != nil {
		return err
	}

	res, err := env.api.Auth.ForgotPassword(ctx, strings.TrimSpace(*email))
	if err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(res)
}

func runJobs(ctx context.Context, env *environment, _ []string) error {
	jobs, err := env.api.Jobs.GetAll(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(jobs)
}

func runCandidates(ctx context.Context, env *environment, _ []string) error {
	candidates, err := env.api.Candidates.GetAll(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(candidates)
}

func runGenerateDescription(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("generate-description", flag.ContinueOnError)
	title := fs.String("title", "", "job title")

	if err := parseFlags(fs, args, "title"); err != nil {
		return err
	}

	return env.print(env.api.Jobs.GenerateDescription(ctx, *title))
}

func runUpload(ctx context.Context, env *environment, args []string) (err error) {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	path := fs.String("file", "", "document to upload")
	docType := fs.String("type", domain.DefaultDocumentType, "document type")
	skipParse := fs.Bool("skip-parse", false, "do not parse the document as a resume")

	if err := parseFlags(fs, args, "file"); err != nil {
		return err
	}

	f, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	res, err := env.api.Candidate.UploadDocument(ctx, domain.Upload{
		Filename:          filepath.Base(*path),
		ContentType:       mime.TypeByExtension(filepath.Ext(*path)),
		Content:           f,
		DocumentType:      *docType,
		SkipResumeParsing: *skipParse,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	return env.print(res)
}
