package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	var postID string
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute post like counters from the reaction store",
		Long: `Recompute likes counters from the stored likes.

A like and its counter update are two separate commits; a crash between them
leaves the counter behind. Run with --post to repair a single post, or without
it to sweep every post.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if postID != "" {
				n, err := app.likes.ReconcileLikeCount(cmd.Context(), postID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "post %s: likes=%d\n", postID, n)
				return nil
			}
			fixed, err := app.likes.ReconcileAllLikeCounts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reconciled %d post counter(s)\n", fixed)
			return nil
		},
	}
	cmd.Flags().StringVar(&postID, "post", "", "reconcile only this post")
	return cmd
}
