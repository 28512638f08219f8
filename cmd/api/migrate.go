package main

import (
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var withForeign bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the reaction store schema and its unique (post, pet) constraint",
		Long: `Create the reaction store schema.

For postgres this creates the "Likes" table and its unique ("postId", "petId")
index. For mongodb it creates the unique (post_id, pet_id) index on the likes
collection. The pet and post stores belong to other services; pass
--with-foreign to create them as well in a local environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.stores.migrate(cmd.Context(), withForeign); err != nil {
				return err
			}
			app.log.Infof("migration complete (storage=%s)", app.cfg.StorageDriver)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withForeign, "with-foreign", false, "also create the pet and post tables (postgres only)")
	return cmd
}
