package cli

import (
	"context"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func (a *App) dashboard(ctx context.Context, _ []string) error {
	st, err := a.Dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Recipes generated: %d\nFavorites: %d\nThis week: %d\n", st.RecipesGenerated, st.Favorites, st.ThisWeek)
	if st.PrimaryDiet != "" {
		a.printf("Primary diet: %s\n", st.PrimaryDiet)
	}

	favs, err := a.Dashboard.RecentFavorites(ctx)
	if err != nil {
		return err
	}
	a.println("Recent favorites:")
	printRecipes(a.out, favs)
	return nil
}

func (a *App) notifications(_ context.Context, _ []string) error {
	list := a.Notifications.List()
	if len(list) == 0 {
		a.println("No notifications")
		return nil
	}
	for _, n := range list {
		a.seen[n.ID] = true
		a.printf("#%d [%s] %s\n", n.ID, n.Level, n.Message)
	}
	return nil
}

func (a *App) feedback(ctx context.Context, _ []string) error {
	var req models.FeedbackRequest
	var err error

	if req.Type, err = a.prompt("Type (bug, feature, general)"); err != nil {
		return err
	}
	if req.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	if req.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Priority, err = a.prompt("Priority (low, medium, high, critical; empty to skip)"); err != nil {
		return err
	}

	fb, err := a.Feedback.Create(ctx, req)
	if err != nil {
		return err
	}
	a.Notifications.Success("Thank you for your feedback!")
	a.printf("Feedback %s recorded\n", fb.ID)
	return nil
}
