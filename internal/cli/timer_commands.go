package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medtime/internal/clock"
)

func (r *RootCommand) newInCommand() *cobra.Command {
	handler := NewErrorHandler()
	return &cobra.Command{
		Use:   "in",
		Short: "Clock in now",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			entry, err := r.ledger.StartTimer(ctx)
			if err != nil {
				return handler.Handle("clock in", err)
			}
			fmt.Printf("Clocked in at %s\n", clock.Format12Hour(entry.TimeIn))
			return nil
		},
	}
}

func (r *RootCommand) newOutCommand() *cobra.Command {
	handler := NewErrorHandler()
	var notes string

	cmd := &cobra.Command{
		Use:   "out",
		Short: "Clock out the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			var notesPtr *string
			if cmd.Flags().Changed("notes") {
				notesPtr = &notes
			}

			entry, err := r.ledger.StopTimer(ctx, notesPtr)
			if err != nil {
				return handler.Handle("clock out", err)
			}
			if entry == nil {
				fmt.Println("No timer is running")
				return nil
			}
			fmt.Printf("Clocked out at %s (%s)\n",
				clock.Format12Hour(entry.TimeOut), clock.FormatDuration(entry.Duration))
			return nil
		},
	}
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes to attach to the entry")
	return cmd
}

func (r *RootCommand) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, active := r.ledger.ActiveEntry()
			if !active {
				fmt.Println("No timer is running")
				return nil
			}
			fmt.Printf("Clocked in since %s on %s\n",
				clock.Format12Hour(entry.TimeIn), clock.FormatDate(entry.Date))
			return nil
		},
	}
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
}
