package domain

import (
	"context"
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Teacher is a person who may hold bookings. Identity is the name; the email
// address is required and validated here, the phone number is optional.
// Teachers are immutable values.
type Teacher struct {
	name  string
	email string
	phone string
}

// NewTeacher returns a Teacher with the given name, email and optional phone.
func NewTeacher(name, email, phone string) (Teacher, error) {
	if name == "" {
		return Teacher{}, fmt.Errorf("%w: teacher name is required", ErrInvalidArgument)
	}
	if email == "" {
		return Teacher{}, fmt.Errorf("%w: teacher email is required", ErrInvalidArgument)
	}
	if !emailPattern.MatchString(email) {
		return Teacher{}, fmt.Errorf("%w: email %q is not a valid address", ErrInvalidArgument, email)
	}
	return Teacher{name: name, email: email, phone: phone}, nil
}

// Name returns the teacher's name.
func (t Teacher) Name() string { return t.name }

// Email returns the teacher's contact address.
func (t Teacher) Email() string { return t.email }

// Phone returns the teacher's phone number, possibly empty.
func (t Teacher) Phone() string { return t.phone }

// IsZero reports whether the teacher was left unconstructed.
func (t Teacher) IsZero() bool { return t.name == "" }

// Equal reports whether both values name the same teacher.
func (t Teacher) Equal(other Teacher) bool { return t.name == other.name }

func (t Teacher) String() string {
	return fmt.Sprintf("[name=%s, email=%s, phone=%s]", t.name, t.email, t.phone)
}

// TeacherRepository defines the interface for the teacher catalog.
type TeacherRepository interface {
	Insert(ctx context.Context, teacher Teacher) error
	Remove(ctx context.Context, teacher Teacher) error
	Find(ctx context.Context, teacher Teacher) (Teacher, error)
	List(ctx context.Context) ([]Teacher, error)
	Count(ctx context.Context) (int, error)
}
