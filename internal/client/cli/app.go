// Package cli is the terminal front end of the welfare client: a small REPL
// over the application services. It also plays the Router and Notifier
// collaborators the auth session manager expects.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/actionunit/aumcli/internal/client/api"
	"github.com/actionunit/aumcli/internal/client/config"
	"github.com/actionunit/aumcli/internal/client/network"
	"github.com/actionunit/aumcli/internal/client/services"
	"github.com/actionunit/aumcli/internal/client/session"
	"github.com/actionunit/aumcli/internal/client/storage"
	"github.com/actionunit/aumcli/internal/client/transport"
	"github.com/actionunit/aumcli/internal/common"
	"github.com/actionunit/aumcli/internal/logging"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	store       *session.Store
	monitor     *network.Monitor
	apiClient   api.Client
	authService services.AuthService

	route  string
	reader *bufio.Reader
}

// NewApp wires the whole client: local store, connectivity monitor, auth
// transport, API client, and services. Everything is constructed here and
// injected; nothing is a package-level singleton.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	store := session.NewStore(ctx, db, log)
	monitor := network.NewMonitor(network.NewHTTPProber(c.APIBaseURL), log)

	tr := transport.New(c.APIBaseURL, store, nil, log)
	apiClient := api.NewHTTPClient(c.APIBaseURL, &http.Client{Transport: tr})

	app := &App{
		config:    c,
		log:       log,
		db:        db,
		store:     store,
		monitor:   monitor,
		apiClient: apiClient,
		reader:    bufio.NewReader(os.Stdin),
	}

	app.authService = services.NewAuthService(apiClient, store, monitor, app, app, log)

	// A failed refresh inside the interceptor demotes the session the same
	// way an explicit logout does.
	tr.OnAuthFailure(func(ctx context.Context) {
		if err := app.authService.Logout(ctx); err != nil {
			log.Error(ctx, "forced logout failed", "err", err)
		}
	})

	return app, nil
}

// Run bootstraps the session, starts the connectivity watcher, and enters
// the REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if user := a.authService.Bootstrap(ctx); user != nil {
		fmt.Printf("Welcome back, %s\n", user.Name)
		a.route = common.RouteHome
	} else {
		a.route = common.RouteLogin
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.monitor.Watch(watchCtx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// getStatus renders the REPL prompt suffix: current user and connectivity.
func (a *App) getStatus() string {
	s := ""
	if u := a.store.CurrentUser(); u != nil {
		s = u.Name + " "
	}
	if a.monitor.CurrentStatus().Connected {
		s += "online"
	} else {
		s += "offline"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

// Navigate implements services.Router. In a terminal app a route is just
// the screen the user would land on.
func (a *App) Navigate(route string) {
	a.route = route
	a.log.Debug(context.Background(), "navigated", "route", route)
}

// CurrentRoute returns the route last navigated to.
func (a *App) CurrentRoute() string {
	return a.route
}

// Success implements services.Notifier.
func (a *App) Success(msg string) {
	fmt.Println("✔", msg)
}

// Error implements services.Notifier.
func (a *App) Error(msg string) {
	fmt.Println("✘", msg)
}
