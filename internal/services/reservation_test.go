package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomreserve/internal/domain"
	"roomreserve/internal/repository/memory"
)

func newTestService() domain.ReservationService {
	return NewReservationService(
		memory.NewRoomRepository(),
		memory.NewTeacherRepository(),
		memory.NewBookingRepository(),
		zap.NewNop(),
	)
}

func mustRoom(t *testing.T, name string, capacity int) domain.Room {
	t.Helper()
	room, err := domain.NewRoom(name, capacity)
	require.NoError(t, err)
	return room
}

func mustTeacher(t *testing.T, name, email string) domain.Teacher {
	t.Helper()
	teacher, err := domain.NewTeacher(name, email, "")
	require.NoError(t, err)
	return teacher
}

func mustHourSlot(t *testing.T, dayText string, hour int) domain.Slot {
	t.Helper()
	day, err := domain.ParseDay(dayText)
	require.NoError(t, err)
	slot, err := domain.NewHourSlot(day, hour)
	require.NoError(t, err)
	return slot
}

func TestBookRequiresCatalogEntries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	ana := mustTeacher(t, "Ana", "ana@x.com")
	lab := mustRoom(t, "Lab1", 30)
	slot := mustHourSlot(t, "01/02/2025", 10)

	_, err := svc.Book(ctx, ana, lab, slot)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "unknown teacher")

	require.NoError(t, svc.CreateTeacher(ctx, ana))
	_, err = svc.Book(ctx, ana, lab, slot)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "unknown room")

	require.NoError(t, svc.CreateRoom(ctx, lab))
	booking, err := svc.Book(ctx, ana, lab, slot)
	require.NoError(t, err)
	assert.True(t, booking.Slot().Equal(slot))
}

func TestBookStoresCatalogEntries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	require.NoError(t, svc.CreateTeacher(ctx, mustTeacher(t, "Ana", "ana@x.com")))
	require.NoError(t, svc.CreateRoom(ctx, mustRoom(t, "Lab1", 30)))

	// Booking with identity-only lookup values picks up the catalog data.
	booking, err := svc.Book(ctx,
		mustTeacher(t, "Ana", "placeholder@x.com"),
		mustRoom(t, "Lab1", 0),
		mustHourSlot(t, "01/02/2025", 10))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", booking.Teacher().Email())
	assert.Equal(t, 30, booking.Room().Capacity())
}

func TestDeleteRoomCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	ana := mustTeacher(t, "Ana", "ana@x.com")
	lab1 := mustRoom(t, "Lab1", 30)
	lab2 := mustRoom(t, "Lab2", 20)
	require.NoError(t, svc.CreateTeacher(ctx, ana))
	require.NoError(t, svc.CreateRoom(ctx, lab1))
	require.NoError(t, svc.CreateRoom(ctx, lab2))

	_, err := svc.Book(ctx, ana, lab1, mustHourSlot(t, "01/02/2025", 10))
	require.NoError(t, err)
	_, err = svc.Book(ctx, ana, lab1, mustHourSlot(t, "01/02/2025", 11))
	require.NoError(t, err)
	_, err = svc.Book(ctx, ana, lab2, mustHourSlot(t, "01/02/2025", 10))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoom(ctx, lab1))

	bookings, err := svc.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1, "only Lab2's booking survives")
	assert.Equal(t, "Lab2", bookings[0].Room().Name())

	rooms, err := svc.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Lab2", rooms[0].Name())
}

func TestDeleteRoomNotFoundLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	ana := mustTeacher(t, "Ana", "ana@x.com")
	lab := mustRoom(t, "Lab1", 30)
	require.NoError(t, svc.CreateTeacher(ctx, ana))
	require.NoError(t, svc.CreateRoom(ctx, lab))
	_, err := svc.Book(ctx, ana, lab, mustHourSlot(t, "01/02/2025", 10))
	require.NoError(t, err)

	err = svc.DeleteRoom(ctx, mustRoom(t, "Lab2", 0))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	rooms, err := svc.Rooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
	bookings, err := svc.Bookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestDeleteTeacherCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	ana := mustTeacher(t, "Ana", "ana@x.com")
	bea := mustTeacher(t, "Bea", "bea@x.com")
	lab := mustRoom(t, "Lab1", 30)
	require.NoError(t, svc.CreateTeacher(ctx, ana))
	require.NoError(t, svc.CreateTeacher(ctx, bea))
	require.NoError(t, svc.CreateRoom(ctx, lab))

	_, err := svc.Book(ctx, ana, lab, mustHourSlot(t, "01/02/2025", 10))
	require.NoError(t, err)
	_, err = svc.Book(ctx, bea, lab, mustHourSlot(t, "01/02/2025", 11))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeacher(ctx, ana))

	bookings, err := svc.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Bea", bookings[0].Teacher().Name())

	teachers, err := svc.Teachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Bea", teachers[0].Name())

	err = svc.DeleteTeacher(ctx, ana)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQueryPassthroughs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	ana := mustTeacher(t, "Ana", "ana@x.com")
	lab := mustRoom(t, "Lab1", 30)
	slot := mustHourSlot(t, "01/02/2025", 10)
	require.NoError(t, svc.CreateTeacher(ctx, ana))
	require.NoError(t, svc.CreateRoom(ctx, lab))
	_, err := svc.Book(ctx, ana, lab, slot)
	require.NoError(t, err)

	byRoom, err := svc.BookingsForRoom(ctx, lab)
	require.NoError(t, err)
	assert.Len(t, byRoom, 1)

	byTeacher, err := svc.BookingsForTeacher(ctx, ana)
	require.NoError(t, err)
	assert.Len(t, byTeacher, 1)

	bySlot, err := svc.BookingsForSlot(ctx, slot)
	require.NoError(t, err)
	assert.Len(t, bySlot, 1)

	found, err := svc.FindRoom(ctx, mustRoom(t, "Lab1", 0))
	require.NoError(t, err)
	assert.Equal(t, 30, found.Capacity())

	teacher, err := svc.FindTeacher(ctx, mustTeacher(t, "Ana", "other@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", teacher.Email())
}

// The end-to-end booking lifecycle: book, double-book, availability, cancel.
func TestReservationLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	ana := mustTeacher(t, "Ana", "ana@x.com")
	lab := mustRoom(t, "Lab1", 30)
	slot := mustHourSlot(t, "01/02/2025", 10)
	require.NoError(t, svc.CreateRoom(ctx, lab))
	require.NoError(t, svc.CreateTeacher(ctx, ana))

	booking, err := svc.Book(ctx, ana, lab, slot)
	require.NoError(t, err)

	_, err = svc.Book(ctx, ana, lab, slot)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	free, err := svc.Availability(ctx, lab, slot)
	require.NoError(t, err)
	assert.False(t, free)

	require.NoError(t, svc.Cancel(ctx, booking))

	free, err = svc.Availability(ctx, lab, slot)
	require.NoError(t, err)
	assert.True(t, free)

	err = svc.Cancel(ctx, booking)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
