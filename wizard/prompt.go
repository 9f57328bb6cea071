package wizard

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hyfetch-cli/hyfetch/preset"
	"github.com/hyfetch-cli/hyfetch/tui"
	"github.com/hyfetch-cli/hyfetch/util"
)

// prompter asks the questions. The survey implementation talks to the
// terminal; tests script the answers.
type prompter interface {
	choose(message string, options []string, def string) (string, error)
	input(message, def string, validate func(string) error) (string, error)
	confirm(message string, def bool) (bool, error)
	pickPreset(options *tui.Options) (*tui.Result, error)
}

type surveyPrompter struct{}

func (surveyPrompter) choose(message string, options []string, def string) (string, error) {
	prompt := survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}

	var response string
	err := survey.AskOne(&prompt, &response)
	return response, err
}

func (surveyPrompter) input(message, def string, validate func(string) error) (string, error) {
	prompt := survey.Input{
		Message: message,
		Default: def,
	}

	var response string
	err := survey.AskOne(&prompt, &response, survey.WithValidator(func(ans any) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text, got %T", ans)
		}
		return validate(s)
	}))
	return response, err
}

func (surveyPrompter) confirm(message string, def bool) (bool, error) {
	prompt := survey.Confirm{
		Message: message,
		Default: def,
	}

	var response bool
	err := survey.AskOne(&prompt, &response)
	return response, err
}

// pickPreset uses the full picker on a terminal and a plain select otherwise.
func (p surveyPrompter) pickPreset(options *tui.Options) (*tui.Result, error) {
	if util.IsTerminal() {
		return tui.Run(options)
	}

	name, err := p.choose("Which flag should the art show?", preset.Names(), options.Selected)
	if err != nil {
		return nil, err
	}

	chosen, err := preset.Get(name)
	if err != nil {
		return nil, err
	}

	return &tui.Result{Preset: chosen, Lightness: options.Lightness, Align: options.Align}, nil
}
