package domain

import "context"

// ReservationService defines the business logic composing the three
// repositories. Deleting a room or a teacher also removes every booking
// referencing it; repository errors pass through unchanged.
type ReservationService interface {
	CreateRoom(ctx context.Context, room Room) error
	DeleteRoom(ctx context.Context, room Room) error
	FindRoom(ctx context.Context, room Room) (Room, error)
	Rooms(ctx context.Context) ([]Room, error)

	CreateTeacher(ctx context.Context, teacher Teacher) error
	DeleteTeacher(ctx context.Context, teacher Teacher) error
	FindTeacher(ctx context.Context, teacher Teacher) (Teacher, error)
	Teachers(ctx context.Context) ([]Teacher, error)

	Book(ctx context.Context, teacher Teacher, room Room, slot Slot) (Booking, error)
	Cancel(ctx context.Context, booking Booking) error
	Availability(ctx context.Context, room Room, slot Slot) (bool, error)
	Bookings(ctx context.Context) ([]Booking, error)
	BookingsForRoom(ctx context.Context, room Room) ([]Booking, error)
	BookingsForTeacher(ctx context.Context, teacher Teacher) ([]Booking, error)
	BookingsForSlot(ctx context.Context, slot Slot) ([]Booking, error)
}
