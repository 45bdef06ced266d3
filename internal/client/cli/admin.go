package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// pageArg reads an optional 1-based page number at args[i].
func pageArg(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	p, err := strconv.Atoi(args[i])
	if err != nil || p < 1 {
		return 0, fmt.Errorf("invalid page %q", args[i])
	}
	return p, nil
}

func (a *App) adminUsers(ctx context.Context, args []string) error {
	page, err := pageArg(args, 0)
	if err != nil {
		return err
	}
	search := strings.Join(args[min(1, len(args)):], " ")
	if err := a.Admin.FetchUsers(ctx, page, search); err != nil {
		return err
	}

	users := a.Admin.Users()
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tUSERNAME\tROLE\tBANNED")
	for _, u := range users.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Email, u.Username, u.Role, u.IsBanned)
	}
	_ = tw.Flush()
	a.printf("Page %d, %d users total\n", users.Page, users.Total)
	return nil
}

func (a *App) adminUser(ctx context.Context, args []string) error {
	if err := a.Admin.FetchUserDetails(ctx, args[0]); err != nil {
		return err
	}
	d := a.Admin.UserDetails()
	printUser(a.out, &d.User)
	a.printf("Recipes: %d  Favorites: %d\n", d.Stats.RecipeCount, d.Stats.FavoriteCount)
	return nil
}

func (a *App) adminRole(ctx context.Context, args []string) error {
	role := models.Role(args[1])
	switch role {
	case models.RoleUser, models.RoleAdmin, models.RoleModerator:
	default:
		return fmt.Errorf("unknown role %q", args[1])
	}
	if err := a.Admin.UpdateUserRole(ctx, args[0], role); err != nil {
		return err
	}
	a.printf("User %s is now %s\n", args[0], role)
	return nil
}

func (a *App) adminBan(ctx context.Context, args []string) error {
	if err := a.Admin.BanUser(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.printf("User %s banned\n", args[0])
	return nil
}

func (a *App) adminUnban(ctx context.Context, args []string) error {
	if err := a.Admin.UnbanUser(ctx, args[0]); err != nil {
		return err
	}
	a.printf("User %s unbanned\n", args[0])
	return nil
}

func (a *App) adminDeleteUser(ctx context.Context, args []string) error {
	if err := a.Admin.DeleteUser(ctx, args[0]); err != nil {
		return err
	}
	a.printf("User %s deleted\n", args[0])
	return nil
}

func (a *App) adminRecipes(ctx context.Context, args []string) error {
	page, err := pageArg(args, 0)
	if err != nil {
		return err
	}
	if err := a.Admin.FetchRecipes(ctx, page); err != nil {
		return err
	}

	recipes := a.Admin.Recipes()
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tHIDDEN")
	for _, r := range recipes.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", r.ID, r.Name, r.UserID, r.IsHidden)
	}
	_ = tw.Flush()
	a.printf("Page %d, %d recipes total\n", recipes.Page, recipes.Total)
	return nil
}

func (a *App) adminHide(ctx context.Context, args []string) error {
	if err := a.Admin.HideRecipe(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.printf("Recipe %s hidden\n", args[0])
	return nil
}

func (a *App) adminUnhide(ctx context.Context, args []string) error {
	if err := a.Admin.UnhideRecipe(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Recipe %s visible again\n", args[0])
	return nil
}

func (a *App) adminDeleteRecipe(ctx context.Context, args []string) error {
	if err := a.Admin.DeleteRecipe(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Recipe %s deleted\n", args[0])
	return nil
}

func (a *App) adminStats(ctx context.Context, _ []string) error {
	if err := a.Admin.FetchPlatformStats(ctx); err != nil {
		return err
	}
	st := a.Admin.PlatformStats()
	a.printf("Users: %d (active 30d: %d, banned: %d)\nRecipes: %d (today: %d)\nFavorites: %d\n",
		st.TotalUsers, st.ActiveUsers30d, st.BannedUsers, st.TotalRecipes, st.RecipesToday, st.TotalFavorites)

	if err := a.Admin.FetchTopUsers(ctx, 0); err != nil {
		return err
	}
	a.println("Top users:")
	for i, u := range a.Admin.TopUsers() {
		a.printf("  %d. %s (%d recipes)\n", i+1, u.Email, u.RecipeCount)
	}
	return nil
}

func (a *App) adminAnalytics(ctx context.Context, args []string) error {
	days := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of days %q", args[0])
		}
		days = n
	}
	if err := a.Admin.FetchDailyStats(ctx, days); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tUSERS\tRECIPES\tFAVORITES")
	for _, d := range a.Admin.DailyStats() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", d.Date, d.NewUsers, d.NewRecipes, d.NewFavorites)
	}
	return tw.Flush()
}

func (a *App) adminActions(ctx context.Context, args []string) error {
	page, err := pageArg(args, 0)
	if err != nil {
		return err
	}
	if err := a.Admin.FetchActions(ctx, page, models.ActionFilter{}); err != nil {
		return err
	}

	actions := a.Admin.Actions()
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tADMIN\tACTION\tTARGET")
	for _, act := range actions.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\n", act.CreatedAt.Format("2006-01-02 15:04"), act.AdminID, act.Action, act.TargetType, act.TargetID)
	}
	_ = tw.Flush()
	a.printf("Page %d, %d actions total\n", actions.Page, actions.Total)
	return nil
}

func (a *App) adminFeedback(ctx context.Context, args []string) error {
	var f models.FeedbackFilter
	if len(args) > 0 {
		f.Status = args[0]
	}
	list, err := a.Feedback.List(ctx, f)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No feedback")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tPRIORITY\tSTATUS\tTITLE")
	for _, fb := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", fb.ID, fb.Type, fb.Priority, fb.Status, fb.Title)
	}
	return tw.Flush()
}

func (a *App) adminFeedbackStatus(ctx context.Context, args []string) error {
	upd := models.FeedbackStatusUpdate{Status: args[1], AdminNotes: strings.Join(args[2:], " ")}
	msg, err := a.Feedback.UpdateStatus(ctx, args[0], upd)
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "Feedback updated"))
	return nil
}
