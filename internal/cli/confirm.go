package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// confirm shows a yes/no prompt. Escape or ctrl+c counts as "no".
// A variable so tests can replace the interactive form.
var confirm = func(title string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description("Targets that already exist are overwritten.").
			Affirmative("Rename").
			Negative("Cancel").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return ok, nil
}
