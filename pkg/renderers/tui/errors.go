package tui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCancelled is returned when the user aborts the prompt flow (Ctrl-C).
var ErrCancelled = errors.New("tui: cancelled")

func translateSurveyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
