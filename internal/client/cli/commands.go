package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/router"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
	errRedirected     = errors.New("redirected")
)

// command is a REPL verb bound to the route it renders. With idParam set
// the first argument fills the route's {id} parameter.
type command struct {
	name    string
	usage   string
	help    string
	route   string
	idParam bool
	minArgs int
	run     func(ctx context.Context, args []string) error
}

func (a *App) registerCommands() {
	a.commands = make(map[string]*command)
	for _, c := range []*command{
		{name: "register", help: "create an account", route: router.Register, run: a.register},
		{name: "login", help: "sign in", route: router.Login, run: a.login},
		{name: "logout", help: "sign out", run: a.logout},
		{name: "whoami", help: "show the signed-in user", run: a.whoami},
		{name: "profile", help: "show your profile", route: router.Profile, run: a.profile},
		{name: "profile-edit", help: "edit your profile", route: router.ProfileEdit, run: a.profileEdit},
		{name: "forgot", help: "request a password reset e-mail", route: router.ForgotPassword, run: a.forgot},
		{name: "reset", usage: "reset <token>", help: "set a new password", route: router.ResetPassword, minArgs: 1, run: a.reset},
		{name: "verify", usage: "verify <token>", help: "verify your e-mail address", route: router.VerifyEmail, minArgs: 1, run: a.verify},
		{name: "resend", help: "resend the verification e-mail", route: router.VerifyEmail, run: a.resend},

		{name: "home", help: "featured recipes", route: router.Home, run: a.home},
		{name: "about", help: "version information", route: router.About, run: a.about},
		{name: "recipes", help: "list recipes", route: router.Recipes, run: a.recipes},
		{name: "search", usage: "search <query> [category] [sort]", help: "search recipes", route: router.Recipes, minArgs: 1, run: a.search},
		{name: "show", usage: "show <id>", help: "show a recipe", route: router.RecipeDetail, idParam: true, minArgs: 1, run: a.show},
		{name: "create", help: "write a new recipe", route: router.RecipeCreate, run: a.create},
		{name: "edit", usage: "edit <id>", help: "edit a recipe", route: router.RecipeEdit, idParam: true, minArgs: 1, run: a.edit},
		{name: "delete", usage: "delete <id>", help: "delete a recipe", route: router.RecipeEdit, idParam: true, minArgs: 1, run: a.deleteRecipe},
		{name: "fav", usage: "fav <id>", help: "toggle a favorite", route: router.Favorites, minArgs: 1, run: a.fav},
		{name: "favorites", help: "list your favorites", route: router.Favorites, run: a.favorites},

		{name: "generate", usage: "generate <prompt>", help: "ask the assistant for a recipe", route: router.Generate, minArgs: 1, run: a.generate},
		{name: "modify", usage: "modify <prompt>", help: "change the last draft", route: router.Generate, minArgs: 1, run: a.modify},
		{name: "fork", usage: "fork <recipe-id> <prompt>", help: "derive a draft from a recipe", route: router.Generate, minArgs: 2, run: a.fork},
		{name: "save", help: "save the last draft as a recipe", route: router.RecipeCreate, run: a.save},
		{name: "drafts", help: "list stored drafts", route: router.Generate, run: a.drafts},
		{name: "limits", help: "show the recipe quota", route: router.Dashboard, run: a.limits},
		{name: "dashboard", help: "your statistics", route: router.Dashboard, run: a.dashboard},
		{name: "notifications", help: "list active notifications", run: a.notifications},
		{name: "feedback", help: "send feedback", route: router.Profile, run: a.feedback},

		{name: "admin-users", usage: "admin-users [page] [search]", help: "list users", route: router.AdminUsers, run: a.adminUsers},
		{name: "admin-user", usage: "admin-user <id>", help: "show a user", route: router.AdminUserDetail, idParam: true, minArgs: 1, run: a.adminUser},
		{name: "admin-role", usage: "admin-role <id> <role>", help: "change a user's role", route: router.AdminUsers, minArgs: 2, run: a.adminRole},
		{name: "admin-ban", usage: "admin-ban <id> [reason]", help: "ban a user", route: router.AdminUsers, minArgs: 1, run: a.adminBan},
		{name: "admin-unban", usage: "admin-unban <id>", help: "lift a ban", route: router.AdminUsers, minArgs: 1, run: a.adminUnban},
		{name: "admin-delete-user", usage: "admin-delete-user <id>", help: "delete a user", route: router.AdminUsers, minArgs: 1, run: a.adminDeleteUser},
		{name: "admin-recipes", usage: "admin-recipes [page]", help: "list all recipes", route: router.AdminRecipes, run: a.adminRecipes},
		{name: "admin-hide", usage: "admin-hide <id> [reason]", help: "hide a recipe", route: router.AdminRecipes, minArgs: 1, run: a.adminHide},
		{name: "admin-unhide", usage: "admin-unhide <id>", help: "unhide a recipe", route: router.AdminRecipes, minArgs: 1, run: a.adminUnhide},
		{name: "admin-delete-recipe", usage: "admin-delete-recipe <id>", help: "delete any recipe", route: router.AdminRecipes, minArgs: 1, run: a.adminDeleteRecipe},
		{name: "admin-stats", help: "platform statistics", route: router.AdminDashboard, run: a.adminStats},
		{name: "admin-analytics", usage: "admin-analytics [days]", help: "daily statistics", route: router.AdminAnalytics, run: a.adminAnalytics},
		{name: "admin-actions", usage: "admin-actions [page]", help: "audit log", route: router.AdminDashboard, run: a.adminActions},
		{name: "admin-feedback", usage: "admin-feedback [status]", help: "list feedback", route: router.AdminDashboard, run: a.adminFeedback},
		{name: "admin-feedback-status", usage: "admin-feedback-status <id> <status> [notes]", help: "update feedback", route: router.AdminDashboard, minArgs: 2, run: a.adminFeedbackStatus},
	} {
		if c.usage == "" {
			c.usage = c.name
		}
		a.commands[c.name] = c
		a.order = append(a.order, c.name)
	}
}

// helpLines lists the commands whose route the current session may open.
func (a *App) helpLines() []string {
	names := append([]string(nil), a.order...)
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	for _, n := range names {
		c := a.commands[n]
		if !a.allowed(c) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-45s %s", c.usage, c.help))
	}
	return append(lines, fmt.Sprintf("  %-45s %s", "exit | quit", "leave the program"))
}

func (a *App) allowed(c *command) bool {
	if c.route == "" {
		return true
	}
	params := map[string]string{"id": "x"}
	m, ok := a.Navigator.Table().Named(c.route, params)
	if !ok {
		return false
	}
	return a.Navigator.Authorizer().Decide(m).Action == router.Proceed
}

// Exec runs one command: navigate to its route, then run the handler.
// A redirect or block is reported and the handler is skipped.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	c, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}
	defer a.flushNotifications()
	defer a.syncMonitor(ctx)

	if len(args) < c.minArgs {
		a.printf("Usage: %s\n", c.usage)
		return errUsage
	}

	if c.route != "" {
		var params map[string]string
		if c.idParam {
			params = map[string]string{"id": args[0]}
		}
		res, err := a.Navigator.Push(ctx, c.route, params)
		if err != nil {
			a.printf("Cannot open %s: %v\n", c.route, err)
			return err
		}
		if res.Redirected() {
			a.printf("%s is not available; redirected to %s\n", c.route, res.Match.Route.Name)
			return errRedirected
		}
	}

	if err := c.run(ctx, args); err != nil {
		a.printf("Error: %s\n", client.Message(err, err.Error()))
		a.Log.Debug(ctx, "command failed", "command", name, "error", err)
		return err
	}
	return nil
}
