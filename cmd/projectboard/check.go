package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/store"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

var errInvalidInput = errors.New("invalid input")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var in ports.ProjectInput

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a project submission without storing it",
		Long: `Run the form rules against the given values and report the rejected fields.
The bounds come from the selected profile when one is given, otherwise the
built-in defaults apply. Exits with status 1 when the submission is invalid.

Examples:
  projectboard check --title "Build API" --description "Design and implement" --people 3
  projectboard check --profile prod --title x --description hi --people 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := app.DefaultFormRules()
			if opts.profile != "" {
				cfg, err := opts.load()
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				rules = app.FormRules{
					DescriptionMinLength: cfg.Form.DescriptionMinLength,
					PeopleMin:            cfg.Form.PeopleMin,
					PeopleMax:            cfg.Form.PeopleMax,
				}
			}

			svc := app.NewProjectService(store.New(), rules, nil, nil)
			if rejected := svc.Check(in); len(rejected) > 0 {
				return fmt.Errorf("%w (rejected: %s)", errInvalidInput, strings.Join(rejected, ", "))
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "project title")
	cmd.Flags().StringVar(&in.Description, "description", "", "project description")
	cmd.Flags().StringVar(&in.People, "people", "", "number of people assigned")

	return cmd
}
