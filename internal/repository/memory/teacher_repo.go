package memory

import (
	"context"
	"fmt"
	"sync"

	"roomreserve/internal/domain"
)

type teacherRepository struct {
	mu       sync.Mutex
	teachers []domain.Teacher
}

// NewTeacherRepository returns an empty in-memory domain.TeacherRepository.
func NewTeacherRepository() domain.TeacherRepository {
	return &teacherRepository{}
}

func (r *teacherRepository) Insert(ctx context.Context, teacher domain.Teacher) error {
	if teacher.IsZero() {
		return fmt.Errorf("%w: teacher is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(teacher) >= 0 {
		return fmt.Errorf("%w: teacher %q", domain.ErrDuplicate, teacher.Name())
	}
	r.teachers = append(r.teachers, teacher)
	return nil
}

func (r *teacherRepository) Remove(ctx context.Context, teacher domain.Teacher) error {
	if teacher.IsZero() {
		return fmt.Errorf("%w: teacher is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(teacher)
	if i < 0 {
		return fmt.Errorf("%w: teacher %q", domain.ErrNotFound, teacher.Name())
	}
	r.teachers = append(r.teachers[:i], r.teachers[i+1:]...)
	return nil
}

func (r *teacherRepository) Find(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	if teacher.IsZero() {
		return domain.Teacher{}, fmt.Errorf("%w: teacher is required", domain.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(teacher)
	if i < 0 {
		return domain.Teacher{}, fmt.Errorf("%w: teacher %q", domain.ErrNotFound, teacher.Name())
	}
	return r.teachers[i], nil
}

func (r *teacherRepository) List(ctx context.Context) ([]domain.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Teacher, len(r.teachers))
	copy(out, r.teachers)
	return out, nil
}

func (r *teacherRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.teachers), nil
}

// indexOf assumes r.mu is held.
func (r *teacherRepository) indexOf(teacher domain.Teacher) int {
	for i, stored := range r.teachers {
		if stored.Equal(teacher) {
			return i
		}
	}
	return -1
}
