package domain

import (
	"context"
	"fmt"
)

// Booking pairs a teacher, a room and a slot. All three are immutable
// values, so a booking never aliases catalog state.
//
// Equality covers the room and the slot only, never the teacher: two
// bookings for the same room and slot are the same booking no matter who
// holds them. The registry's insert relies on this to reject double
// bookings, so widening equality to include the teacher would silently
// disable conflict detection.
type Booking struct {
	teacher Teacher
	room    Room
	slot    Slot
}

// NewBooking returns a Booking for the given teacher, room and slot.
func NewBooking(teacher Teacher, room Room, slot Slot) (Booking, error) {
	if teacher.IsZero() {
		return Booking{}, fmt.Errorf("%w: booking requires a teacher", ErrInvalidArgument)
	}
	if room.IsZero() {
		return Booking{}, fmt.Errorf("%w: booking requires a room", ErrInvalidArgument)
	}
	if slot.IsZero() {
		return Booking{}, fmt.Errorf("%w: booking requires a slot", ErrInvalidArgument)
	}
	return Booking{teacher: teacher, room: room, slot: slot}, nil
}

// Teacher returns the teacher holding the booking.
func (b Booking) Teacher() Teacher { return b.teacher }

// Room returns the booked room.
func (b Booking) Room() Room { return b.room }

// Slot returns the booked slot.
func (b Booking) Slot() Slot { return b.slot }

// IsZero reports whether the booking was left unconstructed.
func (b Booking) IsZero() bool { return b.room.IsZero() || b.slot.IsZero() }

// Points returns the total cost of the booking.
func (b Booking) Points() float64 { return float64(b.slot.Points()) + b.room.Points() }

// Equal reports whether both bookings cover the same room and slot.
func (b Booking) Equal(other Booking) bool {
	return b.room.Equal(other.room) && b.slot.Equal(other.slot)
}

func (b Booking) String() string {
	return fmt.Sprintf("[teacher=%s, room=%s, slot=%s, cost=%.1f]", b.teacher, b.room, b.slot, b.Points())
}

// BookingRepository defines the interface for the booking registry. Insert
// rejects a booking whose (room, slot) pair is already taken; that check is
// the availability rule, not a separate pass over the registry.
type BookingRepository interface {
	Insert(ctx context.Context, booking Booking) error
	Remove(ctx context.Context, booking Booking) error
	Find(ctx context.Context, booking Booking) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ByRoom(ctx context.Context, room Room) ([]Booking, error)
	ByTeacher(ctx context.Context, teacher Teacher) ([]Booking, error)
	BySlot(ctx context.Context, slot Slot) ([]Booking, error)
	IsAvailable(ctx context.Context, room Room, slot Slot) (bool, error)
}
