package cli

import (
	"context"
	"io"

	"go.uber.org/zap"

	"roomreserve/internal/domain"
)

type menu struct {
	svc domain.ReservationService
	con *console
	log *zap.Logger
}

type menuOption struct {
	label string
	run   func(m *menu, ctx context.Context)
}

var options = []menuOption{
	{label: "Exit"},
	{label: "Insert room", run: (*menu).insertRoom},
	{label: "Delete room", run: (*menu).deleteRoom},
	{label: "Find room", run: (*menu).findRoom},
	{label: "List rooms", run: (*menu).listRooms},
	{label: "Insert teacher", run: (*menu).insertTeacher},
	{label: "Delete teacher", run: (*menu).deleteTeacher},
	{label: "Find teacher", run: (*menu).findTeacher},
	{label: "List teachers", run: (*menu).listTeachers},
	{label: "Make reservation", run: (*menu).makeBooking},
	{label: "Cancel reservation", run: (*menu).cancelBooking},
	{label: "List reservations", run: (*menu).listBookings},
	{label: "List reservations by room", run: (*menu).bookingsByRoom},
	{label: "List reservations by teacher", run: (*menu).bookingsByTeacher},
	{label: "List reservations by slot", run: (*menu).bookingsBySlot},
	{label: "Check availability", run: (*menu).checkAvailability},
}

// runMenu drives the interactive loop until the user exits or input ends.
// Every error is rendered and the loop continues; nothing here terminates
// the process.
func runMenu(ctx context.Context, svc domain.ReservationService, in io.Reader, out io.Writer, log *zap.Logger) error {
	m := &menu{svc: svc, con: newConsole(in, out), log: log}
	log.Debug("interactive menu started")

	for {
		m.show()
		choice, ok := m.con.readInt("Choose an option: ")
		if !ok {
			return nil
		}
		if choice < 0 || choice >= len(options) {
			m.con.printf("Unknown option %d.\n", choice)
			continue
		}
		if options[choice].run == nil {
			m.con.printf("Goodbye.\n")
			return nil
		}
		options[choice].run(m, ctx)
	}
}

func (m *menu) show() {
	m.con.printf("\n========== ROOM RESERVATIONS ==========\n")
	for i, opt := range options {
		m.con.printf("%2d - %s\n", i, opt.label)
	}
	m.con.printf("=======================================\n")
}

func (m *menu) insertRoom(ctx context.Context) {
	m.con.printf("-- Insert room --\n")
	room, ok := m.con.readRoom()
	if !ok {
		return
	}
	if err := m.svc.CreateRoom(ctx, room); err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Room inserted.\n")
}

func (m *menu) deleteRoom(ctx context.Context) {
	m.con.printf("-- Delete room --\n")
	room, ok := m.con.readRoomName()
	if !ok {
		return
	}
	if err := m.svc.DeleteRoom(ctx, room); err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Room deleted, together with its reservations.\n")
}

func (m *menu) findRoom(ctx context.Context) {
	m.con.printf("-- Find room --\n")
	room, ok := m.con.readRoomName()
	if !ok {
		return
	}
	found, err := m.svc.FindRoom(ctx, room)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Found: %s\n", found)
}

func (m *menu) listRooms(ctx context.Context) {
	m.con.printf("-- Rooms --\n")
	rooms, err := m.svc.Rooms(ctx)
	if err != nil {
		m.con.printErr(err)
		return
	}
	if len(rooms) == 0 {
		m.con.printf("No rooms registered.\n")
		return
	}
	for _, r := range rooms {
		m.con.printf("%s\n", r)
	}
}

func (m *menu) insertTeacher(ctx context.Context) {
	m.con.printf("-- Insert teacher --\n")
	teacher, ok := m.con.readTeacher()
	if !ok {
		return
	}
	if err := m.svc.CreateTeacher(ctx, teacher); err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Teacher inserted.\n")
}

func (m *menu) deleteTeacher(ctx context.Context) {
	m.con.printf("-- Delete teacher --\n")
	teacher, ok := m.con.readTeacherName()
	if !ok {
		return
	}
	if err := m.svc.DeleteTeacher(ctx, teacher); err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Teacher deleted, together with their reservations.\n")
}

func (m *menu) findTeacher(ctx context.Context) {
	m.con.printf("-- Find teacher --\n")
	teacher, ok := m.con.readTeacherName()
	if !ok {
		return
	}
	found, err := m.svc.FindTeacher(ctx, teacher)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Found: %s\n", found)
}

func (m *menu) listTeachers(ctx context.Context) {
	m.con.printf("-- Teachers --\n")
	teachers, err := m.svc.Teachers(ctx)
	if err != nil {
		m.con.printErr(err)
		return
	}
	if len(teachers) == 0 {
		m.con.printf("No teachers registered.\n")
		return
	}
	for _, t := range teachers {
		m.con.printf("%s\n", t)
	}
}

func (m *menu) makeBooking(ctx context.Context) {
	m.con.printf("-- Make reservation --\n")
	teacher, ok := m.con.readTeacherName()
	if !ok {
		return
	}
	room, ok := m.con.readRoomName()
	if !ok {
		return
	}
	slot, ok := m.con.readSlot()
	if !ok {
		return
	}
	booking, err := m.svc.Book(ctx, teacher, room, slot)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Reserved: %s\n", booking)
}

func (m *menu) cancelBooking(ctx context.Context) {
	m.con.printf("-- Cancel reservation --\n")
	teacher, ok := m.con.readTeacherName()
	if !ok {
		return
	}
	room, ok := m.con.readRoomName()
	if !ok {
		return
	}
	slot, ok := m.con.readSlot()
	if !ok {
		return
	}
	booking, err := domain.NewBooking(teacher, room, slot)
	if err != nil {
		m.con.printErr(err)
		return
	}
	if err := m.svc.Cancel(ctx, booking); err != nil {
		m.con.printErr(err)
		return
	}
	m.con.printf("Reservation canceled.\n")
}

func (m *menu) listBookings(ctx context.Context) {
	m.con.printf("-- Reservations --\n")
	bookings, err := m.svc.Bookings(ctx)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.printBookings(bookings)
}

func (m *menu) bookingsByRoom(ctx context.Context) {
	m.con.printf("-- Reservations by room --\n")
	room, ok := m.con.readRoomName()
	if !ok {
		return
	}
	bookings, err := m.svc.BookingsForRoom(ctx, room)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.printBookings(bookings)
}

func (m *menu) bookingsByTeacher(ctx context.Context) {
	m.con.printf("-- Reservations by teacher --\n")
	teacher, ok := m.con.readTeacherName()
	if !ok {
		return
	}
	bookings, err := m.svc.BookingsForTeacher(ctx, teacher)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.printBookings(bookings)
}

func (m *menu) bookingsBySlot(ctx context.Context) {
	m.con.printf("-- Reservations by slot --\n")
	slot, ok := m.con.readSlot()
	if !ok {
		return
	}
	bookings, err := m.svc.BookingsForSlot(ctx, slot)
	if err != nil {
		m.con.printErr(err)
		return
	}
	m.printBookings(bookings)
}

func (m *menu) checkAvailability(ctx context.Context) {
	m.con.printf("-- Check availability --\n")
	room, ok := m.con.readRoomName()
	if !ok {
		return
	}
	slot, ok := m.con.readSlot()
	if !ok {
		return
	}
	free, err := m.svc.Availability(ctx, room, slot)
	if err != nil {
		m.con.printErr(err)
		return
	}
	if free {
		m.con.printf("Room %s is available at %s.\n", room.Name(), slot)
	} else {
		m.con.printf("Room %s is already reserved at %s.\n", room.Name(), slot)
	}
}

func (m *menu) printBookings(bookings []domain.Booking) {
	if len(bookings) == 0 {
		m.con.printf("No reservations found.\n")
		return
	}
	for _, b := range bookings {
		m.con.printf("%s\n", b)
	}
}
