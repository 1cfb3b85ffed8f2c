package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mkrupp/hirepulse-client/internal/infra/config"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
	"github.com/mkrupp/hirepulse-client/internal/repo/token"
	"github.com/mkrupp/hirepulse-client/internal/session"
	"github.com/mkrupp/hirepulse-client/internal/svc/atssvc"
	"github.com/mkrupp/hirepulse-client/internal/svc/sessionsvc"
)

const (
	appName = "hirepulse"
	svcName = "cli"
)

type Config struct {
	config.EnvConfig

	Log   logging.LoggerConfig `envPrefix:"LOG_"`
	API   http_.ClientConfig   `envPrefix:"API_"`
	ATS   atssvc.Config        `envPrefix:"ATS_"`
	Token token.Config         `envPrefix:"TOKEN_"`
}

func main() {
	var (
		cfg Config

		configPrefix = strings.ToUpper(strings.Join([]string{appName, svcName}, "_"))
		loggerName   = strings.ToLower(strings.Join([]string{appName, svcName}, "."))
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := config.Parse(ctx, &cfg, configPrefix); err != nil {
		panic(err)
	}

	logging.Configure(ctx, cfg.Log, loggerName)

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, cfg, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, cfg Config, name string, args []string) (err error) {
	log := logging.GetLogger("cmd.hirepulse").With("command", name)

	defer func() {
		if err != nil {
			log.DebugContext(ctx, "command failed", "err", err)
		} else {
			log.DebugContext(ctx, "command done")
		}
	}()

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, name)
	}

	repoFactory, err := token.NewRepositoryFactory(cfg.Token)
	if err != nil {
		return fmt.Errorf("new token repository factory: %w", err)
	}

	tokens, err := repoFactory(ctx)
	if err != nil {
		return fmt.Errorf("new token repository: %w", err)
	}

	defer func() {
		if cerr := tokens.Close(); cerr != nil {
			log.WarnContext(ctx, "close token repository failed", "err", cerr)
		}
	}()

	sess := session.New(tokens)
	api := atssvc.New(http_.NewClient(cfg.API, sess, nil), cfg.ATS)
	sessions := sessionsvc.NewSessionService(api.Auth, tokens, sess)

	sessions.OnLogout(func(ctx context.Context) {
		log.WarnContext(ctx, "session expired, please log in again")
	})

	if err := sessions.Bootstrap(ctx); err != nil {
		log.InfoContext(ctx, "continuing without session", "err", err)
	}

	env := &environment{
		api:      api,
		sessions: sessions,
		tokens:   tokens,
		out:      os.Stdout,
	}

	return cmd.run(ctx, env, args)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <command> [flags]\n\ncommands:\n", appName)

	for _, name := range commandNames() {
		fmt.Fprintf(flag.CommandLine.Output(), "  %-22s %s\n", name, commands[name].help)
	}
}
