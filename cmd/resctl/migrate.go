package main

import (
	"fmt"

	"room-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var (
		dir      string
		atlasBin string
		dryRun   bool
	)

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dbCfg config.DBConfig
			if err := envconfig.Process("", &dbCfg); err != nil {
				return errors.Wrap(err, "failed to process db config")
			}

			client, err := atlasexec.NewClient(".", atlasBin)
			if err != nil {
				return errors.Wrap(err, "failed to initialize atlas client")
			}

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    dbCfg.BuildDSN(),
				DirURL: "file://" + dir,
				DryRun: dryRun,
			})
			if err != nil {
				return errors.Wrap(err, "failed to apply migrations")
			}

			out := cmd.OutOrStdout()
			for _, f := range res.Applied {
				fmt.Fprintf(out, "applied %s\n", f.Name)
			}
			fmt.Fprintf(out, "schema at version %q\n", res.Target)
			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", "migrations", "migration directory")
	c.Flags().StringVar(&atlasBin, "atlas", "atlas", "path to the atlas binary")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "print statements without executing them")
	return c
}

