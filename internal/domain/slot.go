package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the calendar-day format used across the reservation system,
// both for parsing console input and for rendering slots.
const DayLayout = "02/01/2006"

// Points charged for reserving each slot kind.
const (
	hourSlotPoints  = 3
	rangeSlotPoints = 10
)

// Hour slots must fall inside the institution's opening hours, inclusive.
const (
	firstHour = 8
	lastHour  = 22
)

// SlotKind tags the closed set of Slot variants.
type SlotKind int

const (
	SlotHour SlotKind = iota
	SlotRange
)

// Segment is the half-day unit covered by a range slot.
type Segment string

const (
	Morning   Segment = "morning"
	Afternoon Segment = "afternoon"
)

// Slot is the unit of time a booking covers: a calendar day paired with
// either a whole hour or a half-day segment. Slots are immutable values;
// the zero value is not usable, construct one with NewHourSlot or
// NewRangeSlot.
type Slot struct {
	kind    SlotKind
	day     time.Time
	hour    int
	segment Segment
}

// NewHourSlot returns an hour slot for the given day and hour of day.
func NewHourSlot(day time.Time, hour int) (Slot, error) {
	d, err := normalizeDay(day)
	if err != nil {
		return Slot{}, err
	}
	if hour < firstHour || hour > lastHour {
		return Slot{}, fmt.Errorf("%w: hour must be between %d and %d", ErrInvalidArgument, firstHour, lastHour)
	}
	return Slot{kind: SlotHour, day: d, hour: hour}, nil
}

// NewRangeSlot returns a half-day slot for the given day and segment.
func NewRangeSlot(day time.Time, segment Segment) (Slot, error) {
	d, err := normalizeDay(day)
	if err != nil {
		return Slot{}, err
	}
	if segment != Morning && segment != Afternoon {
		return Slot{}, fmt.Errorf("%w: unknown segment %q", ErrInvalidArgument, string(segment))
	}
	return Slot{kind: SlotRange, day: d, segment: segment}, nil
}

// ParseDay parses a calendar day in DayLayout form (dd/mm/yyyy).
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: day is required", ErrInvalidArgument)
	}
	day, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day must have the form dd/mm/yyyy", ErrInvalidArgument)
	}
	return day, nil
}

// ParseHour parses an hour of day in "15:04" or bare "15" form. Minutes,
// when present, must be zero: bookings are for whole hours only.
func ParseHour(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: hour is required", ErrInvalidArgument)
	}
	hh, mm, ok := strings.Cut(s, ":")
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: hour %q is not a number", ErrInvalidArgument, s)
	}
	if ok {
		minute, err := strconv.Atoi(mm)
		if err != nil {
			return 0, fmt.Errorf("%w: minutes %q are not a number", ErrInvalidArgument, mm)
		}
		if minute != 0 {
			return 0, fmt.Errorf("%w: bookings start on the hour", ErrInvalidArgument)
		}
	}
	return hour, nil
}

func normalizeDay(day time.Time) (time.Time, error) {
	if day.IsZero() {
		return time.Time{}, fmt.Errorf("%w: day is required", ErrInvalidArgument)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Kind reports which variant this slot is.
func (s Slot) Kind() SlotKind { return s.kind }

// Day returns the calendar day, normalized to midnight UTC.
func (s Slot) Day() time.Time { return s.day }

// Hour returns the hour of day; meaningful only for SlotHour slots.
func (s Slot) Hour() int { return s.hour }

// Segment returns the half-day segment; meaningful only for SlotRange slots.
func (s Slot) Segment() Segment { return s.segment }

// IsZero reports whether the slot was left unconstructed.
func (s Slot) IsZero() bool { return s.day.IsZero() }

// Points returns the cost of reserving this slot.
func (s Slot) Points() int {
	switch s.kind {
	case SlotRange:
		return rangeSlotPoints
	default:
		return hourSlotPoints
	}
}

// Equal reports whether both slots cover the same time: same variant, same
// day and same hour or segment.
func (s Slot) Equal(other Slot) bool {
	if s.kind != other.kind || !s.day.Equal(other.day) {
		return false
	}
	switch s.kind {
	case SlotRange:
		return s.segment == other.segment
	default:
		return s.hour == other.hour
	}
}

func (s Slot) String() string {
	switch s.kind {
	case SlotRange:
		return fmt.Sprintf("[day=%s, segment=%s]", s.day.Format(DayLayout), s.segment)
	default:
		return fmt.Sprintf("[day=%s, hour=%02d:00]", s.day.Format(DayLayout), s.hour)
	}
}
