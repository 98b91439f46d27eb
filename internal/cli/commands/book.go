package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

// NewBookCmd creates the book command
func NewBookCmd(g *Globals) *cobra.Command {
	var (
		req  hotel.BookingRequest
		room string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Submit a booking through the public booking form",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.RoomID = hotel.ID(room)
			return runBook(cmd.Context(), g, req)
		},
	}

	cmd.Flags().StringVar(&room, "room", "", "Room ID")
	cmd.Flags().StringVar(&req.GuestName, "name", "", "Guest name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Guest email")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Guest phone number (E.164)")
	cmd.Flags().StringVar(&req.CheckIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.CheckOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&req.Guests, "guests", 1, "Number of guests")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes for the front desk")

	return cmd
}

func runBook(ctx context.Context, g *Globals, req hotel.BookingRequest, opts ...Option) error {
	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	booking, err := e.api.PublicBookings.Create(ctx, req)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrSessionExpired
	}

	fmt.Fprintf(e.out, "✓ Booking %s received", booking.ID)
	if booking.Status != "" {
		fmt.Fprintf(e.out, " (%s)", booking.Status)
	}
	fmt.Fprintln(e.out)
	return nil
}
