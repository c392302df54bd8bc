package memory

import (
	"context"
	"fmt"
	"sync"

	"roomreserve/internal/domain"
)

// bookingKey identifies a booking by room name and slot text form. The
// slot's String is canonical per variant, so two keys collide exactly when
// the bookings are equal.
type bookingKey struct {
	room string
	slot string
}

func keyFor(room domain.Room, slot domain.Slot) bookingKey {
	return bookingKey{room: room.Name(), slot: slot.String()}
}

type bookingRepository struct {
	mu       sync.Mutex
	bookings []domain.Booking
	// taken holds one entry per live (room, slot) pair. The map is the
	// uniqueness invariant: Insert refuses any key already present.
	taken map[bookingKey]struct{}
}

// NewBookingRepository returns an empty in-memory domain.BookingRepository.
func NewBookingRepository() domain.BookingRepository {
	return &bookingRepository{taken: make(map[bookingKey]struct{})}
}

func (r *bookingRepository) Insert(ctx context.Context, booking domain.Booking) error {
	if booking.IsZero() {
		return fmt.Errorf("%w: booking is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := keyFor(booking.Room(), booking.Slot())
	if _, ok := r.taken[key]; ok {
		return fmt.Errorf("%w: booking already exists for %s at %s",
			domain.ErrConflict, booking.Room().Name(), booking.Slot())
	}
	r.bookings = append(r.bookings, booking)
	r.taken[key] = struct{}{}
	return nil
}

func (r *bookingRepository) Remove(ctx context.Context, booking domain.Booking) error {
	if booking.IsZero() {
		return fmt.Errorf("%w: booking is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := keyFor(booking.Room(), booking.Slot())
	if _, ok := r.taken[key]; !ok {
		return fmt.Errorf("%w: no booking for %s at %s",
			domain.ErrNotFound, booking.Room().Name(), booking.Slot())
	}
	for i, stored := range r.bookings {
		if stored.Equal(booking) {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	delete(r.taken, key)
	return nil
}

func (r *bookingRepository) Find(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	if booking.IsZero() {
		return domain.Booking{}, fmt.Errorf("%w: booking is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.bookings {
		if stored.Equal(booking) {
			return stored, nil
		}
	}
	return domain.Booking{}, fmt.Errorf("%w: no booking for %s at %s",
		domain.ErrNotFound, booking.Room().Name(), booking.Slot())
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *bookingRepository) ByRoom(ctx context.Context, room domain.Room) ([]domain.Booking, error) {
	if room.IsZero() {
		return nil, fmt.Errorf("%w: room is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booking
	for _, stored := range r.bookings {
		if stored.Room().Equal(room) {
			out = append(out, stored)
		}
	}
	return out, nil
}

func (r *bookingRepository) ByTeacher(ctx context.Context, teacher domain.Teacher) ([]domain.Booking, error) {
	if teacher.IsZero() {
		return nil, fmt.Errorf("%w: teacher is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booking
	for _, stored := range r.bookings {
		if stored.Teacher().Equal(teacher) {
			out = append(out, stored)
		}
	}
	return out, nil
}

func (r *bookingRepository) BySlot(ctx context.Context, slot domain.Slot) ([]domain.Booking, error) {
	if slot.IsZero() {
		return nil, fmt.Errorf("%w: slot is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booking
	for _, stored := range r.bookings {
		if stored.Slot().Equal(slot) {
			out = append(out, stored)
		}
	}
	return out, nil
}

func (r *bookingRepository) IsAvailable(ctx context.Context, room domain.Room, slot domain.Slot) (bool, error) {
	if room.IsZero() {
		return false, fmt.Errorf("%w: room is required", domain.ErrInvalidArgument)
	}
	if slot.IsZero() {
		return false, fmt.Errorf("%w: slot is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.taken[keyFor(room, slot)]
	return !ok, nil
}
