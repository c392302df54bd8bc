package domain

import (
	"context"
	"fmt"
)

// PointsPerSeat is the per-seat share of a room's reservation cost. A room
// with no recorded capacity costs nothing on top of the slot.
const PointsPerSeat = 0.5

// Room is a reservable named space. Identity is the name, case-sensitive;
// capacity is informational and feeds the reservation cost. Rooms are
// immutable values.
type Room struct {
	name     string
	capacity int
}

// NewRoom returns a Room with the given name and seat capacity.
func NewRoom(name string, capacity int) (Room, error) {
	if name == "" {
		return Room{}, fmt.Errorf("%w: room name is required", ErrInvalidArgument)
	}
	if capacity < 0 {
		return Room{}, fmt.Errorf("%w: room capacity cannot be negative", ErrInvalidArgument)
	}
	return Room{name: name, capacity: capacity}, nil
}

// Name returns the room's name.
func (r Room) Name() string { return r.name }

// Capacity returns the number of seats in the room.
func (r Room) Capacity() int { return r.capacity }

// IsZero reports whether the room was left unconstructed.
func (r Room) IsZero() bool { return r.name == "" }

// Points returns the room's share of a booking's cost.
func (r Room) Points() float64 { return float64(r.capacity) * PointsPerSeat }

// Equal reports whether both values name the same room.
func (r Room) Equal(other Room) bool { return r.name == other.name }

func (r Room) String() string {
	return fmt.Sprintf("[name=%s, capacity=%d]", r.name, r.capacity)
}

// RoomRepository defines the interface for the room catalog.
type RoomRepository interface {
	Insert(ctx context.Context, room Room) error
	Remove(ctx context.Context, room Room) error
	Find(ctx context.Context, room Room) (Room, error)
	List(ctx context.Context) ([]Room, error)
	Count(ctx context.Context) (int, error)
}
