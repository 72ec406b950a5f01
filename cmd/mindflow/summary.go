package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"mindflow/internal/dashboard"
)

func newSummaryCmd(a *app) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a user's dashboard as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("missing --user")
			}

			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.ListEntries(ctx, userID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dashboard.Build(entries))
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "identity provider user id")
	return cmd
}
