package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/absolutejs/create-absolutejs/internal/ui"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

var errNoFrontend = errors.New("select at least one frontend")

// Run asks every question whose condition holds and stores the answers in
// opts. Values already in opts, for example from flags, are the defaults.
// Each question runs as its own huh.Form so later option lists can depend
// on earlier answers.
func Run(ctx context.Context, questions []Question, opts *models.ProjectOptions, theme *ui.Theme) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	ht := newHuhTheme(theme)
	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(opts) {
			continue
		}

		field, commit := buildField(q, opts)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(ht).
			WithAccessible(false)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
		commit()
	}
	return nil
}

// buildField creates the huh field for q and a commit func that copies
// the answer into opts once the form completes.
func buildField(q *Question, opts *models.ProjectOptions) (huh.Field, func()) {
	current := currentValue(q.ID, opts)

	switch q.Type {
	case QuestionTypeSelect:
		value := current
		sel := huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(huhOptions(q.Options(opts))...).
			Value(&value)
		return sel, func() { applyValue(q.ID, value, opts) }

	case QuestionTypeMultiSelect:
		var values []string
		if current != "" {
			values = strings.Split(current, ",")
		}
		ms := huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(huhOptions(q.Options(opts))...).
			Value(&values)
		if q.Validate != nil {
			ms = ms.Validate(func(v []string) error { return q.Validate(strings.Join(v, ",")) })
		}
		return ms, func() { applyValue(q.ID, strings.Join(values, ","), opts) }

	case QuestionTypeConfirm:
		value, _ := strconv.ParseBool(current)
		c := huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Value(&value)
		return c, func() { applyValue(q.ID, strconv.FormatBool(value), opts) }
	}

	value := current
	in := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if current != "" {
		in = in.Placeholder(current)
	}
	if q.Validate != nil {
		in = in.Validate(func(v string) error { return q.Validate(strings.TrimSpace(v)) })
	}
	return in, func() { applyValue(q.ID, value, opts) }
}

func huhOptions(opts []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, opt := range opts {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		out[i] = huh.NewOption(key, opt.Value)
	}
	return out
}

// newHuhTheme maps the ui palette onto a huh theme.
func newHuhTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme == nil || theme.NoColor {
		return t
	}

	primary := lipgloss.Color(theme.Colors.Primary)
	secondary := lipgloss.Color(theme.Colors.Secondary)
	green := lipgloss.Color(theme.Colors.Success)
	red := lipgloss.Color(theme.Colors.Error)
	text := lipgloss.Color(theme.Colors.Text)
	muted := lipgloss.Color(theme.Colors.Muted)
	border := lipgloss.Color(theme.Colors.Border)

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(text).Background(lipgloss.Color("#374151"))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description
	return t
}
