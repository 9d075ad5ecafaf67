package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/table-reservation/internal/domain"
)

func newCheckConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Load config and shop rules, connect to the backends and print the effective rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := openEngine(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer engine.Close()

			shop := engine.Shop
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shop:            %s\n", shop.Name)
			fmt.Fprintf(out, "timezone:        %s\n", shop.Location)
			fmt.Fprintf(out, "hours:           %s-%s every %d min\n", shop.OpenTime, shop.CloseTime, shop.SlotIntervalMinutes)
			fmt.Fprintf(out, "per slot:        %d reservations\n", shop.MaxReservationsPerSlot)
			fmt.Fprintf(out, "max party size:  %d\n", shop.MaxPartySize)
			fmt.Fprintf(out, "weekly off days: %s\n", weekdays(shop.WeeklyOffDays))
			for _, rule := range shop.SeatRules {
				fmt.Fprintf(out, "seat %-10s party %d-%d, capacity units %d\n", rule.Type, rule.MinParty, rule.MaxParty, rule.TotalCapacityUnits)
			}
			fmt.Fprintf(out, "holidays:        %s %s (%d days, valid %s..%s)\n",
				engine.Holidays.Locale, engine.Holidays.Version, engine.Holidays.Len(),
				engine.Holidays.ValidFrom().Format(domain.DateFormat), engine.Holidays.ValidUntil().Format(domain.DateFormat))
			fmt.Fprintf(out, "backend:         %s\n", cfg.Calendar.Backend)
			fmt.Fprintf(out, "commit lock:     %s\n", cfg.Booking.CommitLock)
			return nil
		},
	}
}

func newSlotsCmd(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print open slots of one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, err := openEngine(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer engine.Close()

			day, err := time.ParseInLocation(domain.DateFormat, date, engine.Shop.Location)
			if err != nil {
				return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
			}

			availability, err := engine.Availability.Day(cmd.Context(), day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if availability.IsClosed {
				fmt.Fprintf(out, "%s closed\n", date)
				return nil
			}
			if len(availability.OpenSlots) == 0 {
				fmt.Fprintf(out, "%s full\n", date)
				return nil
			}
			for _, slot := range availability.OpenSlots {
				fmt.Fprintln(out, slot)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day in YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMonthCmd(opts *options) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print status of every day of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return errors.New("--month must be between 1 and 12")
			}

			_, engine, err := openEngine(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer engine.Close()

			days, err := engine.Availability.MonthSummary(cmd.Context(), year, time.Month(month))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range days {
				fmt.Fprintf(out, "%s %-3s %-10s %d\n", d.Date.Format(domain.DateFormat), d.Date.Weekday().String()[:3], d.Status, d.OpenSlots)
			}
			return nil
		},
	}
	now := time.Now()
	cmd.Flags().IntVar(&year, "year", now.Year(), "year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "month 1-12")

	return cmd
}

func weekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return "-"
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}
