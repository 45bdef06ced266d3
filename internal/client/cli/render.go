package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func printUser(w io.Writer, u *models.User) {
	if u == nil {
		fmt.Fprintln(w, "No profile loaded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	fmt.Fprintf(tw, "Verified:\t%t\n", u.EmailVerified)
	if u.Bio != "" {
		fmt.Fprintf(tw, "Bio:\t%s\n", u.Bio)
	}
	if len(u.DietaryLifestyles) > 0 {
		fmt.Fprintf(tw, "Diets:\t%s\n", strings.Join(u.DietaryLifestyles, ", "))
	}
	if len(u.CuisinePreferences) > 0 {
		fmt.Fprintf(tw, "Cuisines:\t%s\n", strings.Join(u.CuisinePreferences, ", "))
	}
	if u.IsBanned {
		fmt.Fprintf(tw, "Banned:\t%s\n", u.BanReason)
	}
	_ = tw.Flush()
}

func printRecipes(w io.Writer, list []models.Recipe) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No recipes")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tFAV")
	for _, r := range list {
		fav := ""
		if r.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Category, fav)
	}
	_ = tw.Flush()
}

func printRecipe(w io.Writer, r *models.Recipe) {
	fmt.Fprintf(w, "%s (%s)\n", r.Name, r.ID)
	if r.Description != "" {
		fmt.Fprintln(w, r.Description)
	}
	fmt.Fprintf(w, "Category: %s  Cuisine: %s  Favorite: %t\n", r.Category, r.Cuisine, r.IsFavorite)
	printNutrition(w, r.Nutrition)
	printSteps(w, r.Ingredients, r.Instructions)
}

func printDraft(w io.Writer, d *models.RecipeDraft) {
	fmt.Fprintf(w, "Draft %s: %s\n", d.ID, d.Name)
	if d.Description != "" {
		fmt.Fprintln(w, d.Description)
	}
	fmt.Fprintf(w, "Prep: %s  Cook: %s  Serves: %s  Difficulty: %s\n", d.PrepTime, d.CookTime, d.Servings.Value, d.Difficulty)
	printNutrition(w, models.Nutrition{Calories: d.Calories, Protein: d.Protein, Carbs: d.Carbs, Fat: d.Fat})
	printSteps(w, d.Ingredients, d.Instructions)
}

func printNutrition(w io.Writer, n models.Nutrition) {
	fmt.Fprintf(w, "Calories: %.0f  Protein: %.1fg  Carbs: %.1fg  Fat: %.1fg\n", n.Calories, n.Protein, n.Carbs, n.Fat)
}

func printSteps(w io.Writer, ingredients, instructions []string) {
	if len(ingredients) > 0 {
		fmt.Fprintln(w, "Ingredients:")
		for _, i := range ingredients {
			fmt.Fprintf(w, "  - %s\n", i)
		}
	}
	if len(instructions) > 0 {
		fmt.Fprintln(w, "Instructions:")
		for n, s := range instructions {
			fmt.Fprintf(w, "  %d. %s\n", n+1, s)
		}
	}
}
