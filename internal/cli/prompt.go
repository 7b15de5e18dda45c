package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tacogips/t3init/internal/selection"
)

// Prompter asks the user questions. The survey implementation is used at
// runtime; tests substitute a scripted one.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string, def bool, help string) (bool, error)
	// Select asks the user to pick one of options.
	Select(message string, options []string, def string, help string) (string, error)
}

// surveyPrompter implements Prompter on top of survey.
type surveyPrompter struct{}

// NewSurveyPrompter returns a terminal Prompter.
func NewSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Confirm(message string, def bool, help string) (bool, error) {
	var result bool
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
		Help:    help,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

func (surveyPrompter) Select(message string, options []string, def string, help string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Help:    help,
	}
	if def != "" {
		prompt.Default = def
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

// PromptForSelection asks for the routing style, auth provider and data layer,
// offering def's values as defaults.
func PromptForSelection(p Prompter, def selection.Selection) (selection.Selection, error) {
	sel := def

	appRouter, err := p.Confirm("Use the Next.js app router?", def.UseAppRouter,
		"The app router adds src/trpc/{server,client,shared}.ts and a server action module.")
	if err != nil {
		return sel, fmt.Errorf("failed to prompt for router style: %w", err)
	}
	sel.UseAppRouter = appRouter

	authName, err := p.Select("Which auth provider would you like to use?",
		names(selection.AllAuthProviders()), def.Auth.String(),
		"Auth templates protect the example router and add a server-side session helper.")
	if err != nil {
		return sel, fmt.Errorf("failed to prompt for auth provider: %w", err)
	}
	if sel.Auth, err = selection.ParseAuthProvider(authName); err != nil {
		return sel, err
	}

	dbName, err := p.Select("Which database ORM would you like to use?",
		names(selection.AllDataLayers()), def.Data.String(),
		"The example router and server action persist posts through the chosen ORM.")
	if err != nil {
		return sel, fmt.Errorf("failed to prompt for data layer: %w", err)
	}
	if sel.Data, err = selection.ParseDataLayer(dbName); err != nil {
		return sel, err
	}

	return sel, nil
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
