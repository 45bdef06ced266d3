package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/buildinfo"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func (a *App) home(ctx context.Context, _ []string) error {
	res, err := a.Featured.Featured(ctx, 0)
	if err != nil {
		return err
	}
	a.println("Featured recipes:")
	printRecipes(a.out, res.Recipes)
	return nil
}

func (a *App) about(_ context.Context, _ []string) error {
	a.println("recipebox: recipes, favorites and an AI cooking assistant")
	buildinfo.PrintBuildData(a.out)
	return nil
}

func (a *App) recipes(ctx context.Context, _ []string) error {
	if err := a.Recipes.Fetch(ctx); err != nil {
		return err
	}
	printRecipes(a.out, a.Recipes.Recipes())
	return nil
}

// search takes the query, then an optional category and sort key.
func (a *App) search(ctx context.Context, args []string) error {
	query, category, sortBy := args[0], "", ""
	if len(args) > 1 {
		category = args[1]
	}
	if len(args) > 2 {
		sortBy = args[2]
	}
	if err := a.Recipes.Search(ctx, query, category, sortBy); err != nil {
		return err
	}
	printRecipes(a.out, a.Recipes.Recipes())
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	r, err := a.Recipes.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printRecipe(a.out, r)
	return nil
}

// readRecipe prompts for the recipe fields. Empty answers keep the values
// of base when it is given.
func (a *App) readRecipe(base *models.Recipe) (models.RecipeInput, error) {
	var in models.RecipeInput
	if base != nil {
		in = models.RecipeInput{
			Name:               base.Name,
			Description:        base.Description,
			Category:           base.Category,
			Cuisine:            base.Cuisine,
			Ingredients:        base.Ingredients,
			Instructions:       base.Instructions,
			DietaryPreferences: base.DietaryPreferences,
			Tags:               base.Tags,
			Nutrition:          base.Nutrition,
		}
	}

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Name", &in.Name},
		{"Description", &in.Description},
		{"Category", &in.Category},
		{"Cuisine", &in.Cuisine},
	} {
		v, err := a.prompt(f.prompt)
		if err != nil {
			return in, err
		}
		if v != "" {
			*f.dst = v
		}
	}

	ingredients, err := getLines(a.reader, "Ingredients, one per line", a.out)
	if err != nil {
		return in, err
	}
	if len(ingredients) > 0 {
		in.Ingredients = ingredients
	}
	instructions, err := getLines(a.reader, "Instructions, one step per line", a.out)
	if err != nil {
		return in, err
	}
	if len(instructions) > 0 {
		in.Instructions = instructions
	}
	tags, err := getList(a.reader, "Tags", a.out)
	if err != nil {
		return in, err
	}
	if len(tags) > 0 {
		in.Tags = tags
	}

	if in.Ingredients == nil {
		in.Ingredients = []string{}
	}
	if in.Instructions == nil {
		in.Instructions = []string{}
	}
	if in.DietaryPreferences == nil {
		in.DietaryPreferences = []string{}
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return in, nil
}

func (a *App) create(ctx context.Context, _ []string) error {
	if !a.checkQuota() {
		return nil
	}
	in, err := a.readRecipe(nil)
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		a.println("A recipe needs a name")
		return nil
	}
	r, err := a.Recipes.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Created recipe %s\n", r.ID)
	_ = a.Limits.Refresh(ctx)
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	base, err := a.Recipes.Get(ctx, args[0])
	if err != nil {
		return err
	}
	in, err := a.readRecipe(base)
	if err != nil {
		return err
	}
	r, err := a.Recipes.Update(ctx, args[0], in)
	if err != nil {
		return err
	}
	a.printf("Updated recipe %s\n", r.ID)
	return nil
}

func (a *App) deleteRecipe(ctx context.Context, args []string) error {
	if err := a.Recipes.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Deleted recipe %s\n", args[0])
	return nil
}

func (a *App) fav(ctx context.Context, args []string) error {
	res, err := a.Recipes.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}
	switch {
	case res.Message != "":
		a.println(res.Message)
	case res.IsFavorite:
		a.println("Added to favorites")
	default:
		a.println("Removed from favorites")
	}
	return nil
}

func (a *App) favorites(ctx context.Context, _ []string) error {
	if err := a.Recipes.FetchFavorites(ctx); err != nil {
		return err
	}
	printRecipes(a.out, a.Recipes.Favorites())
	return nil
}
