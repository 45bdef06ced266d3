package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getList       = GetList
	getLines      = GetLines
)

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) password() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// register prompts for the account fields and signs the new user in.
func (a *App) register(ctx context.Context, _ []string) error {
	var req models.RegisterRequest
	var err error

	if req.Name, err = a.prompt("Enter your name"); err != nil {
		return err
	}
	if req.Email, err = a.prompt("Enter email"); err != nil {
		return err
	}
	if req.Username, err = a.prompt("Enter username"); err != nil {
		return err
	}
	if req.Password, err = a.password(); err != nil {
		return err
	}
	if req.DietaryLifestyles, err = getList(a.reader, "Dietary lifestyles", a.out); err != nil {
		return err
	}
	if req.CuisinePreferences, err = getList(a.reader, "Favourite cuisines", a.out); err != nil {
		return err
	}
	if req.Allergies, err = getList(a.reader, "Allergies", a.out); err != nil {
		return err
	}

	if err := a.Session.Register(ctx, req); err != nil {
		return err
	}
	a.println("Account created. Check your inbox to verify your e-mail address.")
	return a.landAfterSignIn(ctx)
}

func (a *App) login(ctx context.Context, _ []string) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	pw, err := a.password()
	if err != nil {
		return err
	}

	if err := a.Session.Login(ctx, models.LoginRequest{Email: email, Password: pw}); err != nil {
		return err
	}
	a.println("Login successful")
	return a.landAfterSignIn(ctx)
}

// landAfterSignIn moves from the auth-only route to the dashboard.
func (a *App) landAfterSignIn(ctx context.Context) error {
	res, err := a.Navigator.Push(ctx, router.Dashboard, nil)
	if err != nil {
		return err
	}
	if res.Redirected() {
		a.printf("Continue at %s\n", res.Match.Route.Name)
	}
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.Session.Logout(ctx)
	a.println("Logged out")
	_, err := a.Navigator.Push(ctx, router.Home, nil)
	return err
}

func (a *App) whoami(_ context.Context, _ []string) error {
	snap := a.Session.Snapshot()
	if !snap.IsAuthenticated {
		a.println("Not signed in")
		return nil
	}
	printUser(a.out, snap.User)
	return nil
}

func (a *App) profile(ctx context.Context, _ []string) error {
	if err := a.Session.FetchProfile(ctx); err != nil {
		return err
	}
	printUser(a.out, a.Session.User())
	return nil
}

// profileEdit asks for each editable field; an empty answer keeps it.
func (a *App) profileEdit(ctx context.Context, _ []string) error {
	var upd models.ProfileUpdate
	for _, f := range []struct {
		prompt string
		dst    **string
	}{
		{"Name (empty to keep)", &upd.Name},
		{"Username (empty to keep)", &upd.Username},
		{"Bio (empty to keep)", &upd.Bio},
	} {
		v, err := a.prompt(f.prompt)
		if err != nil {
			return err
		}
		if v = strings.TrimSpace(v); v != "" {
			*f.dst = &v
		}
	}

	u, err := a.Session.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	a.println("Profile updated")
	printUser(a.out, u)
	return nil
}

func (a *App) forgot(ctx context.Context, _ []string) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	msg, err := a.Account.RequestPasswordReset(ctx, email)
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "If the address is registered, a reset link is on its way."))
	return nil
}

// reset checks the token first so a stale link fails before the password
// prompt.
func (a *App) reset(ctx context.Context, args []string) error {
	if _, err := a.Account.VerifyResetToken(ctx, args[0]); err != nil {
		return err
	}
	pw, err := a.password()
	if err != nil {
		return err
	}
	msg, err := a.Account.CompletePasswordReset(ctx, args[0], pw)
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "Password updated. You can now log in."))
	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	msg, err := a.Account.VerifyEmail(ctx, args[0])
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "E-mail verified"))
	if a.Session.IsAuthenticated() {
		return a.Session.FetchProfile(ctx)
	}
	return nil
}

func (a *App) resend(ctx context.Context, _ []string) error {
	email := ""
	if u := a.Session.User(); u != nil {
		email = u.Email
	}
	if email == "" {
		var err error
		if email, err = a.prompt("Enter email"); err != nil {
			return err
		}
	}
	msg, err := a.Account.ResendVerification(ctx, email)
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "Verification e-mail sent"))
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
