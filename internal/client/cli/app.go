package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/config"
	"github.com/dmitrijs2005/recipebox/internal/client/ratelimit"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/recipebox/internal/client/router"
	"github.com/dmitrijs2005/recipebox/internal/client/services"
	"github.com/dmitrijs2005/recipebox/internal/client/session"
	"github.com/dmitrijs2005/recipebox/internal/client/stores"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// Deps are the collaborators the commands run against.
type Deps struct {
	Session       *session.Holder
	Navigator     *router.Navigator
	Recipes       *stores.RecipeStore
	Admin         *stores.AdminStore
	Notifications *stores.NotificationStore
	Limits        *ratelimit.Monitor
	Generation    services.GenerationService
	Dashboard     services.DashboardService
	Account       services.AccountService
	Feedback      services.FeedbackService
	Featured      services.FeaturedService
	Log           logging.Logger
}

type App struct {
	Deps

	reader   *bufio.Reader
	out      io.Writer
	commands map[string]*command
	order    []string

	seen       map[int]bool
	monitoring bool
	closers    []func() error
}

// NewApp opens the local database, builds the HTTP gateway and wires every
// store and service on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(client.Options{
		BaseURL:           c.APIBaseURL,
		Timeout:           c.RequestTimeout,
		GenerationTimeout: c.GenerationTimeout,
		Logger:            log,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(wire(api, db, c, log), os.Stdin, os.Stdout)
	a.closers = append(a.closers, a.Session.Close, db.Close)
	return a, nil
}

func wire(api *client.HTTPClient, db *sql.DB, c *config.Config, log logging.Logger) Deps {
	notes := stores.NewNotificationStore()

	holder := session.New(api, session.NewSQLitePersister(db, log), log)
	holder.SetNotifier(notes)
	api.SetTokenSource(holder.Token)
	api.OnUnauthorized(holder.HandleUnauthorized)

	nav := router.NewNavigator(router.NewTable(), router.NewAuthorizer(holder, log))
	recipes := stores.NewRecipeStore(api, log)

	return Deps{
		Session:       holder,
		Navigator:     nav,
		Recipes:       recipes,
		Admin:         stores.NewAdminStore(api, log),
		Notifications: notes,
		Limits:        ratelimit.NewMonitor(api, c.RateLimitRefreshInterval, log),
		Generation:    services.NewGenerationService(api, recipes, drafts.NewSQLiteRepository(db), log),
		Dashboard:     services.NewDashboardService(api),
		Account:       services.NewAccountService(api),
		Feedback:      services.NewFeedbackService(api),
		Featured:      services.NewFeaturedService(api),
		Log:           log,
	}
}

func newApp(d Deps, in io.Reader, out io.Writer) *App {
	if d.Log == nil {
		d.Log = logging.NewNop()
	}
	a := &App{
		Deps:   d,
		reader: bufio.NewReader(in),
		out:    out,
		seen:   make(map[int]bool),
	}
	a.registerCommands()
	return a
}

// Run restores the persisted session, lands on the home route and serves
// the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.Session.Bootstrap(ctx); err != nil {
		a.Log.Warn(ctx, "session restore failed", "error", err)
	}
	if err := a.Generation.Restore(ctx); err != nil {
		a.Log.Warn(ctx, "draft restore failed", "error", err)
	}
	if _, err := a.Navigator.Push(ctx, router.Home, nil); err != nil {
		a.Log.Warn(ctx, "initial navigation failed", "error", err)
	}
	a.syncMonitor(ctx)

	a.println("Welcome to recipebox (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	return nil
}

// Close stops background work and releases the database.
func (a *App) Close() {
	if a.Limits != nil {
		a.Limits.Stop()
	}
	if a.Notifications != nil {
		a.Notifications.Close()
	}
	for _, c := range a.closers {
		_ = c()
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.Session.IsAuthenticated()
}

func (a *App) status() string {
	snap := a.Session.Snapshot()
	where := "-"
	if m, ok := a.Navigator.Current(); ok {
		where = m.Route.Name
	}
	if !snap.IsAuthenticated || snap.User == nil {
		return fmt.Sprintf("(guest %s)", where)
	}
	name := snap.User.Email
	if snap.IsAdmin {
		name += " admin"
	}
	return fmt.Sprintf("(%s %s)", name, where)
}

// syncMonitor runs the rate-limit schedule only while a user is signed in.
func (a *App) syncMonitor(ctx context.Context) {
	if a.Limits == nil {
		return
	}
	switch authed := a.isLoggedIn(); {
	case authed && !a.monitoring:
		if err := a.Limits.Start(ctx); err != nil {
			a.Log.Warn(ctx, "rate limit monitor not started", "error", err)
			return
		}
		a.monitoring = true
	case !authed && a.monitoring:
		a.Limits.Stop()
		a.monitoring = false
	}
}

// flushNotifications prints notifications that have not been shown yet.
func (a *App) flushNotifications() {
	if a.Notifications == nil {
		return
	}
	for _, n := range a.Notifications.List() {
		if a.seen[n.ID] {
			continue
		}
		a.seen[n.ID] = true
		a.printf("[%s] %s\n", n.Level, n.Message)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
