package hotel

import (
	"context"
	"fmt"
)

const publicBookingsPath = "/public/bookings"

// BookingRequest is the public booking form.
type BookingRequest struct {
	RoomID      ID     `json:"room_id" validate:"required"`
	GuestName   string `json:"guest_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	CheckIn     string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut    string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests      int    `json:"guests" validate:"required,min=1,max=10"`
	Notes       string `json:"notes,omitempty" validate:"max=500"`
}

// PublicBookings submits bookings from the public site.
type PublicBookings struct {
	res *Resource[Booking]
}

// Create validates and submits a booking.
func (p *PublicBookings) Create(ctx context.Context, req BookingRequest) (*Booking, error) {
	if err := Validate(req); err != nil {
		return nil, fmt.Errorf("booking rejected: %w", err)
	}
	return p.res.Create(ctx, req)
}
