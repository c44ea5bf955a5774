package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"

	"github.com/spf13/cobra"
)

func checkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout <paymentId>",
		Short: "Start a PayPal checkout for a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}

			ctx := context.Background()
			if _, err := requireSession(ctx); err != nil {
				return err
			}

			payment, err := client.GetPayment(ctx, paymentID)
			if err != nil {
				return err
			}
			// An already-settled payment never goes back to PayPal.
			if payment.Status == api.PaymentPaid {
				fmt.Printf("Payment %d is already paid (%s).\n", payment.ID, formatVND(payment.Amount))
				return nil
			}

			paypal, err := client.CreatePayPalPayment(ctx, paymentID)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(map[string]any{
					"payment_id":   payment.ID,
					"amount":       payment.Amount,
					"approval_url": paypal.ApprovalURL,
				})
			}

			fmt.Printf("Payment %d: %s\n", payment.ID, formatVND(payment.Amount))
			fmt.Println("Open this URL in a browser to approve the payment:")
			fmt.Println(paypal.ApprovalURL)
			fmt.Printf("Then run 'datsan payments status %d' to confirm.\n", payment.ID)
			return nil
		},
	}

	return cmd
}

func paymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Inspect payments",
	}

	cmd.AddCommand(paymentsStatusCmd())
	return cmd
}

func paymentsStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <paymentId>",
		Short: "Report the final state of a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid payment id %q", args[0])
			}

			ctx := context.Background()
			if _, err := requireSession(ctx); err != nil {
				return err
			}

			payment, err := client.GetPayment(ctx, paymentID)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(payment)
			}

			switch payment.Status {
			case api.PaymentPaid:
				fmt.Printf("Payment %d succeeded: %s paid for booking %d.\n", payment.ID, formatVND(payment.Amount), payment.BookingID)
			case api.PaymentError:
				fmt.Printf("Payment %d failed. Booking %d is still unpaid; run 'datsan checkout %d' to retry.\n", payment.ID, payment.BookingID, payment.ID)
			default:
				fmt.Printf("Payment %d is %s (%s). Run 'datsan checkout %d' to pay.\n", payment.ID, payment.Status, formatVND(payment.Amount), payment.ID)
			}
			return nil
		},
	}

	return cmd
}
