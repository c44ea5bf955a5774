package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/booking"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/storage"

	"github.com/spf13/cobra"
)

func bookCmd() *cobra.Command {
	var complexID int
	var pitchID int
	var groupID int
	var date string
	var slotID int

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a pitch or pitch group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if complexID == 0 {
				return fmt.Errorf("--complex is required")
			}
			if pitchID != 0 && groupID != 0 {
				return fmt.Errorf("use either --pitch or --group, not both")
			}
			if pitchID == 0 && groupID == 0 {
				return fmt.Errorf("--pitch or --group is required")
			}
			if date == "" {
				return fmt.Errorf("--date is required")
			}

			bookingDate, err := parseBookingDate(date, time.Now())
			if err != nil {
				return err
			}

			ctx := context.Background()
			user, err := requireSession(ctx)
			if err != nil {
				return err
			}

			complex, err := client.GetComplexByID(ctx, complexID)
			if err != nil {
				return err
			}
			if complex.Status != api.ComplexActive {
				return fmt.Errorf("complex %q is %s and cannot be booked", complex.Name, complex.Status)
			}

			var target booking.Target
			if pitchID != 0 {
				pitches, err := client.GetPitchesByComplex(ctx, complexID)
				if err != nil {
					return err
				}
				target, err = booking.ResolvePitch(pitches, pitchID)
				if err != nil {
					return err
				}
			} else {
				groups, err := client.GetPitchGroupsByComplex(ctx, complexID)
				if err != nil {
					return err
				}
				target, err = booking.ResolveGroup(groups, groupID)
				if err != nil {
					return err
				}
			}

			slots, err := client.GetAvailableTimeSlots(ctx, complexID, target.Type, target.ID, bookingDate)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Printf("No free slots for %s on %s.\n", target.Name, bookingDate)
				return nil
			}

			if slotID == 0 {
				return renderSlotChoices(target, bookingDate, slots)
			}

			slot, ok := booking.FindSlot(slots, slotID)
			if !ok {
				return fmt.Errorf("slot %d is not available for %s on %s", slotID, target.Name, bookingDate)
			}

			quote := booking.ComputeQuote(target, slot)
			fmt.Printf("%s (%s), %s %s\n", target.Name, target.Type, bookingDate, slotRange(slot))
			fmt.Printf("Pitch price: %s (covers the %.1fh session)\n", formatVND(quote.TargetPrice), quote.Hours)
			fmt.Printf("Slot fee: %s\n", formatVND(quote.SlotPrice))
			fmt.Printf("Total: %s\n", formatVND(quote.Total))

			result, err := booking.Submit(ctx, client, user.ID, target, slot, bookingDate, quote)
			if err != nil {
				var paymentErr *booking.PaymentError
				if errors.As(err, &paymentErr) {
					fmt.Printf("Booking %d was created but no payment could be attached.\n", paymentErr.BookingID)
					fmt.Println("It is held as pending; see 'datsan bookings list' to retry or cancel.")
				}
				return err
			}

			cacheBooking(result, complex, target, slot, quote)

			fmt.Printf("Booked %s on %s %s.\n", target.Name, bookingDate, slotRange(slot))
			fmt.Printf("Booking ID: %d (pending)\n", result.Booking.ID)
			fmt.Printf("Payment ID: %d (%s, unpaid)\n", result.Payment.ID, formatVND(result.Payment.Amount))
			fmt.Printf("Run 'datsan checkout %d' to pay with PayPal.\n", result.Payment.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&complexID, "complex", 0, "Complex ID")
	cmd.Flags().IntVar(&pitchID, "pitch", 0, "Pitch ID")
	cmd.Flags().IntVar(&groupID, "group", 0, "Pitch group ID")
	cmd.Flags().StringVar(&date, "date", "", "Booking date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().IntVar(&slotID, "slot", 0, "Time slot ID (omit to list the options)")
	return cmd
}

func renderSlotChoices(target booking.Target, date string, slots []api.TimeSlot) error {
	fmt.Printf("Free slots for %s on %s:\n", target.Name, date)
	writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "SLOT\tTIME\tFEE\tTOTAL")
	for _, slot := range slots {
		quote := booking.ComputeQuote(target, slot)
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", slot.ID, slotRange(slot), formatVND(slot.Price), formatVND(quote.Total))
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Println("Re-run with --slot <id> to book.")
	return nil
}

// cacheBooking mirrors a fresh booking into the local history cache.
// Cache trouble never fails the booking that already happened.
func cacheBooking(result booking.Result, complex api.Complex, target booking.Target, slot api.TimeSlot, quote booking.Quote) {
	db, err := storage.OpenBookingsDB()
	if err != nil {
		return
	}
	defer db.Close()

	_ = storage.UpsertBooking(db, storage.CachedBooking{
		ID:          result.Booking.ID,
		ComplexName: complex.Name,
		TargetType:  target.Type,
		TargetName:  target.Name,
		BookingDate: result.Booking.BookingDate,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Amount:      quote.Total,
		Status:      api.BookingPending,
		SyncedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}
