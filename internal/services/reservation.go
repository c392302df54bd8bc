package services

import (
	"context"

	"go.uber.org/zap"

	"roomreserve/internal/domain"
)

type reservationService struct {
	rooms    domain.RoomRepository
	teachers domain.TeacherRepository
	bookings domain.BookingRepository
	log      *zap.Logger
}

// NewReservationService returns a domain.ReservationService composing the
// three repositories.
func NewReservationService(
	rooms domain.RoomRepository,
	teachers domain.TeacherRepository,
	bookings domain.BookingRepository,
	log *zap.Logger,
) domain.ReservationService {
	return &reservationService{
		rooms:    rooms,
		teachers: teachers,
		bookings: bookings,
		log:      log,
	}
}

func (s *reservationService) CreateRoom(ctx context.Context, room domain.Room) error {
	if err := s.rooms.Insert(ctx, room); err != nil {
		return err
	}
	s.log.Info("room created", zap.String("room", room.Name()))
	return nil
}

// DeleteRoom removes the room and every booking referencing it. Bookings go
// first so a failed sweep leaves the room in place rather than orphaning
// its bookings.
func (s *reservationService) DeleteRoom(ctx context.Context, room domain.Room) error {
	if _, err := s.rooms.Find(ctx, room); err != nil {
		return err
	}
	swept, err := s.bookings.ByRoom(ctx, room)
	if err != nil {
		return err
	}
	for _, b := range swept {
		if err := s.bookings.Remove(ctx, b); err != nil {
			return err
		}
	}
	if err := s.rooms.Remove(ctx, room); err != nil {
		return err
	}
	s.log.Info("room deleted",
		zap.String("room", room.Name()),
		zap.Int("bookings_removed", len(swept)))
	return nil
}

func (s *reservationService) FindRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	return s.rooms.Find(ctx, room)
}

func (s *reservationService) Rooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *reservationService) CreateTeacher(ctx context.Context, teacher domain.Teacher) error {
	if err := s.teachers.Insert(ctx, teacher); err != nil {
		return err
	}
	s.log.Info("teacher created", zap.String("teacher", teacher.Name()))
	return nil
}

// DeleteTeacher removes the teacher and every booking held by them, bookings
// first, mirroring DeleteRoom.
func (s *reservationService) DeleteTeacher(ctx context.Context, teacher domain.Teacher) error {
	if _, err := s.teachers.Find(ctx, teacher); err != nil {
		return err
	}
	swept, err := s.bookings.ByTeacher(ctx, teacher)
	if err != nil {
		return err
	}
	for _, b := range swept {
		if err := s.bookings.Remove(ctx, b); err != nil {
			return err
		}
	}
	if err := s.teachers.Remove(ctx, teacher); err != nil {
		return err
	}
	s.log.Info("teacher deleted",
		zap.String("teacher", teacher.Name()),
		zap.Int("bookings_removed", len(swept)))
	return nil
}

func (s *reservationService) FindTeacher(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	return s.teachers.Find(ctx, teacher)
}

func (s *reservationService) Teachers(ctx context.Context) ([]domain.Teacher, error) {
	return s.teachers.List(ctx)
}

// Book reserves the room for the slot on the teacher's behalf. Both the
// teacher and the room must already exist in their catalogs; the booking
// stores the catalog entries, not the lookup values the caller passed.
func (s *reservationService) Book(ctx context.Context, teacher domain.Teacher, room domain.Room, slot domain.Slot) (domain.Booking, error) {
	t, err := s.teachers.Find(ctx, teacher)
	if err != nil {
		return domain.Booking{}, err
	}
	r, err := s.rooms.Find(ctx, room)
	if err != nil {
		return domain.Booking{}, err
	}
	booking, err := domain.NewBooking(t, r, slot)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return domain.Booking{}, err
	}
	s.log.Info("booking created",
		zap.String("teacher", t.Name()),
		zap.String("room", r.Name()),
		zap.Stringer("slot", slot))
	return booking, nil
}

func (s *reservationService) Cancel(ctx context.Context, booking domain.Booking) error {
	if err := s.bookings.Remove(ctx, booking); err != nil {
		return err
	}
	s.log.Info("booking canceled",
		zap.String("room", booking.Room().Name()),
		zap.Stringer("slot", booking.Slot()))
	return nil
}

func (s *reservationService) Availability(ctx context.Context, room domain.Room, slot domain.Slot) (bool, error) {
	return s.bookings.IsAvailable(ctx, room, slot)
}

func (s *reservationService) Bookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *reservationService) BookingsForRoom(ctx context.Context, room domain.Room) ([]domain.Booking, error) {
	return s.bookings.ByRoom(ctx, room)
}

func (s *reservationService) BookingsForTeacher(ctx context.Context, teacher domain.Teacher) ([]domain.Booking, error) {
	return s.bookings.ByTeacher(ctx, teacher)
}

func (s *reservationService) BookingsForSlot(ctx context.Context, slot domain.Slot) ([]domain.Booking, error) {
	return s.bookings.BySlot(ctx, slot)
}
