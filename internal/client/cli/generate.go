package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/ratelimit"
)

// now is a test seam for the clock used in quota messages.
var now = time.Now

func (a *App) generate(ctx context.Context, args []string) error {
	if !a.checkQuota() {
		return nil
	}
	resp, err := a.Generation.Generate(ctx, strings.Join(args, " "), false)
	if err != nil {
		return err
	}
	a.showGeneration(resp)
	_ = a.Limits.Refresh(ctx)
	return nil
}

func (a *App) modify(ctx context.Context, args []string) error {
	last := a.Generation.LastDraft()
	if last == nil {
		a.println("No draft to modify. Use generate first.")
		return nil
	}
	resp, err := a.Generation.Modify(ctx, strings.Join(args, " "), last.ID)
	if err != nil {
		return err
	}
	a.showGeneration(resp)
	return nil
}

func (a *App) fork(ctx context.Context, args []string) error {
	if !a.checkQuota() {
		return nil
	}
	resp, err := a.Generation.Fork(ctx, strings.Join(args[1:], " "), args[0])
	if err != nil {
		return err
	}
	a.showGeneration(resp)
	_ = a.Limits.Refresh(ctx)
	return nil
}

func (a *App) showGeneration(resp *models.LLMQueryResponse) {
	if resp.Message != "" {
		a.println(resp.Message)
	}
	if len(resp.SimilarRecipes) > 0 {
		a.println("Similar recipes already exist:")
		printRecipes(a.out, resp.SimilarRecipes)
	}
	if resp.Recipe != nil {
		printDraft(a.out, resp.Recipe)
		a.println("Use 'save' to keep it or 'modify <prompt>' to change it.")
	}
}

// checkQuota reports whether generation may proceed, printing when the
// quota resets otherwise.
func (a *App) checkQuota() bool {
	if a.Limits.CanCreate() {
		return true
	}
	st := a.Limits.Status()
	a.printf("Recipe limit reached. Try again in %s.\n", ratelimit.FormatResetTime(st.ResetTime, now()))
	return false
}

func (a *App) save(ctx context.Context, _ []string) error {
	r, err := a.Generation.SaveDraft(ctx, nil)
	if err != nil {
		return err
	}
	a.printf("Saved draft as recipe %s\n", r.ID)
	return nil
}

func (a *App) drafts(ctx context.Context, _ []string) error {
	list, err := a.Generation.Drafts(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No stored drafts")
		return nil
	}
	for _, d := range list {
		a.printf("%s  %s  (%q)\n", d.Draft.ID, d.Draft.Name, d.Query)
	}
	return nil
}

func (a *App) limits(ctx context.Context, _ []string) error {
	if err := a.Limits.Refresh(ctx); err != nil {
		return err
	}
	st := a.Limits.Status()
	a.printf("Recipes: %d of %d left (%d%% used), resets in %s\n",
		st.Remaining, st.Limit, ratelimit.UsagePercentage(*st), ratelimit.FormatResetTime(st.ResetTime, now()))
	return nil
}
