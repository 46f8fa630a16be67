package terminal

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kaleido-app/shear/pkg/domain/interfaces"
	"github.com/kaleido-app/shear/pkg/domain/types"
)

type prompter struct{}

// NewPrompter creates a Prompter backed by interactive terminal prompts
func NewPrompter() interfaces.Prompter {
	return &prompter{}
}

// Input asks for a single line of text
func (p *prompter) Input(ctx context.Context, message, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateErr(err)
	}
	return out, nil
}

// Confirm asks a yes/no question
func (p *prompter) Confirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var out bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateErr(err)
	}
	return out, nil
}

func translateErr(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) {
		return goerr.New("prompt interrupted", goerr.T(types.ErrTagConfig))
	}
	return err
}
