package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/storage"

	"github.com/spf13/cobra"
)

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage your bookings",
	}

	cmd.AddCommand(bookingsListCmd())
	cmd.AddCommand(bookingsSyncCmd())
	cmd.AddCommand(bookingsCancelCmd())
	return cmd
}

func bookingsListCmd() *cobra.Command {
	var upcoming bool
	var past bool
	var local bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if upcoming && past {
				return fmt.Errorf("use either --upcoming or --past, not both")
			}

			if local {
				return listCachedBookings(upcoming, past)
			}

			ctx := context.Background()
			user, err := requireSession(ctx)
			if err != nil {
				return err
			}

			bookings, err := client.GetUserBookings(ctx, user.ID)
			if err != nil {
				return err
			}

			today := time.Now().Format("2006-01-02")
			filtered := bookings[:0:0]
			for _, b := range bookings {
				if upcoming && b.BookingDate < today {
					continue
				}
				if past && b.BookingDate >= today {
					continue
				}
				filtered = append(filtered, b)
			}

			if outputJSON {
				return writeJSON(filtered)
			}
			if len(filtered) == 0 {
				fmt.Println("No bookings.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tCOMPLEX\tTARGET\tDATE\tTIME\tSTATUS")
			for _, b := range filtered {
				timeRange := fmt.Sprintf("%s-%s", slotLabel(b.StartTime), slotLabel(b.EndTime))
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.ComplexName, b.TargetName, b.BookingDate, timeRange, b.Status)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only bookings from today onward")
	cmd.Flags().BoolVar(&past, "past", false, "Only bookings before today")
	cmd.Flags().BoolVar(&local, "local", false, "Read the local cache instead of the backend")
	return cmd
}

func listCachedBookings(upcoming, past bool) error {
	db, err := storage.OpenBookingsDB()
	if err != nil {
		return err
	}
	defer db.Close()

	bookings, err := storage.ListCachedBookings(db, storage.CachedBookingFilter{
		Upcoming: upcoming,
		Past:     past,
		NowDate:  time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(bookings)
	}
	if len(bookings) == 0 {
		fmt.Println("No cached bookings. Run 'datsan bookings sync' first.")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tCOMPLEX\tTARGET\tDATE\tTIME\tAMOUNT\tSTATUS")
	for _, b := range bookings {
		timeRange := fmt.Sprintf("%s-%s", slotLabel(b.StartTime), slotLabel(b.EndTime))
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.ComplexName, b.TargetName, b.BookingDate, timeRange, formatVND(b.Amount), b.Status)
	}
	return writer.Flush()
}

func bookingsSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local booking cache from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireSession(ctx)
			if err != nil {
				return err
			}

			bookings, err := client.GetUserBookings(ctx, user.ID)
			if err != nil {
				return err
			}

			db, err := storage.OpenBookingsDB()
			if err != nil {
				return err
			}
			defer db.Close()

			syncedAt := time.Now().UTC().Format(time.RFC3339)
			for _, b := range bookings {
				cached := storage.CachedBooking{
					ID:          b.ID,
					ComplexName: b.ComplexName,
					TargetType:  b.TargetType,
					TargetName:  b.TargetName,
					BookingDate: b.BookingDate,
					StartTime:   b.StartTime,
					EndTime:     b.EndTime,
					Status:      b.Status,
					SyncedAt:    syncedAt,
				}
				if err := storage.SyncBooking(db, cached); err != nil {
					return fmt.Errorf("cache booking %d: %w", b.ID, err)
				}
			}

			fmt.Printf("Synced %d bookings.\n", len(bookings))
			return nil
		},
	}

	return cmd
}

func bookingsCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}

			ctx := context.Background()
			user, err := requireSession(ctx)
			if err != nil {
				return err
			}

			// Only pending bookings may be cancelled; check before the
			// round trip so the refusal names the actual status.
			bookings, err := client.GetUserBookings(ctx, user.ID)
			if err != nil {
				return err
			}
			var found *api.Booking
			for i := range bookings {
				if bookings[i].ID == id {
					found = &bookings[i]
					break
				}
			}
			if found == nil {
				return fmt.Errorf("booking %d not found", id)
			}
			if found.Status != api.BookingPending {
				return fmt.Errorf("booking %d is %s; only pending bookings can be cancelled", id, found.Status)
			}

			if err := client.CancelBooking(ctx, id); err != nil {
				return err
			}

			updateCachedStatus(id, api.BookingCancelled)

			fmt.Printf("Booking %d cancelled.\n", id)
			return nil
		},
	}

	return cmd
}

func updateCachedStatus(id int, status string) {
	db, err := storage.OpenBookingsDB()
	if err != nil {
		return
	}
	defer db.Close()

	bookings, err := storage.ListCachedBookings(db, storage.CachedBookingFilter{})
	if err != nil {
		return
	}
	for _, b := range bookings {
		if b.ID != id {
			continue
		}
		b.Status = status
		b.SyncedAt = time.Now().UTC().Format(time.RFC3339)
		_ = storage.UpsertBooking(db, b)
		return
	}
}
