package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hiring-portal/internal/access"
	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/logger"
	"github.com/spigell/hiring-portal/internal/metrics"
	"github.com/spigell/hiring-portal/internal/session"
	"github.com/spigell/hiring-portal/internal/workflow"
)

// environment is everything a command needs, built once per invocation.
type environment struct {
	config   *Config
	logger   *zap.Logger
	store    *session.Store
	client   *hiring.Client
	registry *prometheus.Registry
	metrics  *metrics.Recorder
}

func newEnvironment() (*environment, error) {
	log := logger.New(viper.GetBool("json"), viper.GetBool("debug"))

	config, err := getConfig()
	if err != nil {
		return nil, err
	}

	store := session.NewStore(session.NewFilePersister(config.SessionFile), log.Named("session"))
	store.Initialize()

	client := hiring.New(log.Named("hiring"), store)
	client.APIURL = config.APIURL
	client.HTTPClient.Timeout = config.Timeout
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	registry := prometheus.NewRegistry()
	recorder, err := metrics.New(registry)
	if err != nil {
		return nil, err
	}

	log.Debug("environment ready",
		zap.String("api_url", config.APIURL),
		zap.String("session_file", config.SessionFile),
		zap.Stringer("session", store.Current().State),
	)

	return &environment{
		config:   config,
		logger:   log,
		store:    store,
		client:   client,
		registry: registry,
		metrics:  recorder,
	}, nil
}

func (e *environment) close() {
	if e.config.Metrics != nil && e.config.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(e.config.Metrics.Textfile, e.registry); err != nil {
			e.logger.Warn("exporting metrics", zap.Error(err))
		}
	}
	_ = e.logger.Sync()
}

// run wraps a command body with environment setup and teardown.
func run(fn func(cmd *cobra.Command, args []string, env *environment) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.close()

		return fn(cmd, args, env)
	}
}

func (e *environment) deps() workflow.Deps {
	return workflow.Deps{
		Session: e.store,
		Logger:  e.logger,
		Metrics: e.metrics,
	}
}

func (e *environment) progress() workflow.ProgressConfig {
	cfg := workflow.DefaultProgress()
	cfg.Interval = e.config.Progress.Interval
	cfg.Cap = e.config.Progress.Cap
	return cfg
}

type needsAuthError struct {
	dest access.Destination
}

func (e *needsAuthError) Error() string {
	return fmt.Sprintf("the %s area requires an account: run `%s login`, `%s register`, or pass --guest to browse", e.dest, app, app)
}

// enter passes the access gate for dest and returns what the session may do
// there. With --guest an unauthenticated session becomes a guest of the
// area's role for this invocation.
func (e *environment) enter(dest access.Destination) (session.Capabilities, error) {
	s := e.store.Current()

	if viper.GetBool("guest") {
		if s.IsAuthenticated() {
			e.logger.Warn("already logged in, ignoring --guest", zap.String("username", s.Username))
		} else {
			var err error
			if s, err = e.store.CommitGuest(dest.Role()); err != nil {
				return session.Capabilities{}, err
			}
		}
	}

	decision := access.CanEnter(dest, s)
	e.logger.Debug("access decision",
		zap.String("destination", string(dest)),
		zap.Stringer("session", s.State),
		zap.Stringer("decision", decision),
	)

	if decision == access.NeedsAuth {
		return session.Capabilities{}, &needsAuthError{dest: dest}
	}
	if s.IsAuthenticated() && dest.Role() != session.RoleNone && s.Role != dest.Role() {
		e.logger.Info("entering an area of another role", zap.String("role", s.Role.String()), zap.String("area", string(dest)))
	}

	return access.Capabilities(decision, s), nil
}

// requireSubmit turns a missing submit capability into the rejection the
// coordinators report for the same session.
func (e *environment) requireSubmit(caps session.Capabilities) error {
	if caps.Submit {
		return nil
	}
	if err := workflow.CheckSubmit(e.store); err != nil {
		return err
	}
	return workflow.ErrNotAuthenticated
}

// print writes view as JSON or the rendered text, depending on --output.
func (e *environment) print(w io.Writer, view any, render func() string) error {
	if e.config.Output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	_, err := fmt.Fprintln(w, render())
	return err
}

// progressPrinter shows the simulated progress on w unless the output is
// meant for machines.
func (e *environment) progressPrinter(w io.Writer) workflow.ProgressFunc {
	if e.config.Output == outputJSON || viper.GetBool("json") {
		return nil
	}

	return func(percent float64) {
		fmt.Fprintf(w, "\r%3.0f%% complete", percent)
		if percent >= 100 {
			fmt.Fprintln(w)
		}
	}
}

func trimmed(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
