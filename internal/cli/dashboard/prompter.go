package dashboard

import (
	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user questions.
type Prompter interface {
	// Select asks the user to choose one of options.
	Select(message string, options []string) (string, error)

	// Input asks the user for a free text answer.
	Input(message, help string) (string, error)
}

// surveyPrompter is the [Prompter] reading from the terminal.
type surveyPrompter struct{}

var _ Prompter = surveyPrompter{}

// Select implements Prompter.
func (surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}
	err := survey.AskOne(prompt, &answer)
	return answer, err
}

// Input implements Prompter.
func (surveyPrompter) Input(message, help string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
	}
	err := survey.AskOne(prompt, &answer)
	return answer, err
}
