// Package memory provides in-memory implementations of the reservation
// repositories. State lives in insertion-ordered slices guarded by a
// mutex; every value handed out is an independent copy of the stored one.
package memory

import (
	"context"
	"fmt"
	"sync"

	"roomreserve/internal/domain"
)

type roomRepository struct {
	mu    sync.Mutex
	rooms []domain.Room
}

// NewRoomRepository returns an empty in-memory domain.RoomRepository.
func NewRoomRepository() domain.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Insert(ctx context.Context, room domain.Room) error {
	if room.IsZero() {
		return fmt.Errorf("%w: room is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(room) >= 0 {
		return fmt.Errorf("%w: room %q", domain.ErrDuplicate, room.Name())
	}
	r.rooms = append(r.rooms, room)
	return nil
}

func (r *roomRepository) Remove(ctx context.Context, room domain.Room) error {
	if room.IsZero() {
		return fmt.Errorf("%w: room is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(room)
	if i < 0 {
		return fmt.Errorf("%w: room %q", domain.ErrNotFound, room.Name())
	}
	r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
	return nil
}

func (r *roomRepository) Find(ctx context.Context, room domain.Room) (domain.Room, error) {
	if room.IsZero() {
		return domain.Room{}, fmt.Errorf("%w: room is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(room)
	if i < 0 {
		return domain.Room{}, fmt.Errorf("%w: room %q", domain.ErrNotFound, room.Name())
	}
	return r.rooms[i], nil
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}

func (r *roomRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms), nil
}

// indexOf assumes r.mu is held.
func (r *roomRepository) indexOf(room domain.Room) int {
	for i, stored := range r.rooms {
		if stored.Equal(room) {
			return i
		}
	}
	return -1
}
