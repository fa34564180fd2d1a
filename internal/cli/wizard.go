package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lexproHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func lexproHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// clientOptions lists every client as a huh select option.
func clientOptions(ctx context.Context, app *App) []huh.Option[string] {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return nil
	}
	options := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		options = append(options, huh.NewOption(c.Name, c.ID))
	}
	return options
}

// lawyerOptions lists every lawyer as a huh select option.
func lawyerOptions(ctx context.Context, app *App) []huh.Option[string] {
	lawyers, err := app.Users.Lawyers(ctx)
	if err != nil {
		return nil
	}
	options := make([]huh.Option[string], 0, len(lawyers))
	for _, u := range lawyers {
		options = append(options, huh.NewOption(u.Name, u.ID))
	}
	return options
}

// projectOptions lists every project as a huh select option.
func projectOptions(ctx context.Context, app *App) []huh.Option[string] {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil
	}
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := fmt.Sprintf("%s (%s)", p.Name, p.ClientName)
		options = append(options, huh.NewOption(label, p.ID))
	}
	return options
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Si").
				Negative("No").
				Value(result),
		),
	).WithTheme(lexproHuhTheme()).WithShowHelp(false)
}

// validateRequired rejects an empty string.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s es obligatorio", field)
		}
		return nil
	}
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("usa el formato YYYY-MM-DD")
	}
	return nil
}

// validateRequiredDate accepts only a YYYY-MM-DD date string.
func validateRequiredDate(s string) error {
	if s == "" {
		return fmt.Errorf("la fecha es obligatoria")
	}
	return validateOptionalDate(s)
}

// validatePositiveHours accepts a positive decimal number of hours.
func validatePositiveHours(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("ingresa un numero de horas mayor a cero")
	}
	return nil
}

// validateOptionalNonNegativeInt accepts empty or a non-negative integer.
func validateOptionalNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("ingresa un numero no negativo")
	}
	return nil
}

// parseHours parses a decimal hour string already validated by the form.
func parseHours(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseNonNegativeInt parses s, returning fallback for empty or invalid input.
func parseNonNegativeInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
