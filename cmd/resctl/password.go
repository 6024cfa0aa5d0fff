package main

import (
	"bufio"
	"fmt"
	"strings"

	"room-reservation/internal/pkg/password"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	var cost int

	c := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash suitable for ADMIN_PASSWORD_HASH",
		Long:  "Hashes the given password, or the first line of stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plain string
			if len(args) == 1 {
				plain = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.Wrap(err, "failed to read password from stdin")
				}
				plain = strings.TrimRight(line, "\r\n")
			}

			hash, err := password.Hash(plain, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	c.Flags().IntVar(&cost, "cost", password.DefaultCost, "bcrypt cost")
	return c
}
