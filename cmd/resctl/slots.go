package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/pkg/config"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newSlotsCmd() *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "slots",
		Short: "Print the slot grid of an empty room for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var appCfg config.AppConfig
			if err := envconfig.Process("", &appCfg); err != nil {
				return errors.Wrap(err, "failed to process app config")
			}
			loc, err := appCfg.Location()
			if err != nil {
				return err
			}

			cal, err := slot.NewCalendar(appCfg.OpeningHour, appCfg.ClosingHour)
			if err != nil {
				return err
			}
			engine := slot.NewEngine(cal, slot.Rules{OpeningFloor: cal.Opening()}, appCfg.MaxRangeSlots, loc)

			now := time.Now()
			day := slot.DateOf(now.In(loc))
			if date != "" {
				if day, err = slot.ParseDate(date); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLOT\tSTATUS")
			for _, cell := range engine.Day(day, nil, now).Grid() {
				status := "open"
				if !cell.Eligible() {
					status = string(cell.Reason)
				}
				fmt.Fprintf(w, "%s\t%s\n", cell.Slot, status)
			}
			return w.Flush()
		},
	}

	c.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD, defaults to today")
	return c
}
