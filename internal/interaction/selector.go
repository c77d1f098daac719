// Where: internal/interaction/selector.go
// What: Interactive selection helpers using the huh library.
// Why: Provide keyboard-based selection for the mode picker.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

// runSelectPrompt executes the select form. Swapped in tests.
var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// SelectValue shows a keyboard-driven menu and returns the chosen value.
// A cancelled form surfaces huh.ErrUserAborted unwrapped so callers can
// treat it as an operator abort rather than a failure.
func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	if err := runSelectPrompt(title, huhOptions, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
