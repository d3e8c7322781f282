package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssignCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Run one auto-assignment pass over unassigned call records",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			var teamID *string
			if team != "" {
				teamID = &team
			}

			created, err := a.assignments.AutoAssign(cmd.Context(), teamID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "assignments created: %d\n", created)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "restrict assignment to reviewers on this team")
	return cmd
}
