package course

import (
	"context"
	"sort"
	"sync"
)

type InMemCourseRepo struct {
	lock    sync.Mutex
	nextID  int64
	courses map[int64]Course
}

func NewInMemCourseRepo() *InMemCourseRepo {
	return &InMemCourseRepo{courses: make(map[int64]Course)}
}

func (m *InMemCourseRepo) CreateCourse(ctx context.Context, c Course) (Course, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.courses[c.ID] = c
	return c, nil
}

func (m *InMemCourseRepo) UpdateCourse(ctx context.Context, c Course) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.courses[c.ID]; !ok {
		return ErrCourseNotFound()
	}
	m.courses[c.ID] = c
	return nil
}

func (m *InMemCourseRepo) DeleteCourse(ctx context.Context, id int64) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.courses[id]; !ok {
		return ErrCourseNotFound()
	}
	delete(m.courses, id)
	return nil
}

func (m *InMemCourseRepo) GetCourse(ctx context.Context, id int64) (Course, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	c, ok := m.courses[id]
	if !ok {
		return Course{}, ErrCourseNotFound()
	}
	return c, nil
}

func (m *InMemCourseRepo) ListCourses(ctx context.Context) ([]Course, error) {
	return m.filter(func(Course) bool { return true }), nil
}

func (m *InMemCourseRepo) ListActiveCourses(ctx context.Context) ([]Course, error) {
	return m.filter(func(c Course) bool { return c.Active }), nil
}

func (m *InMemCourseRepo) ListCoursesByTrainer(ctx context.Context, trainerID int64) ([]Course, error) {
	return m.filter(func(c Course) bool {
		return c.TrainerID != nil && *c.TrainerID == trainerID
	}), nil
}

func (m *InMemCourseRepo) filter(keep func(Course) bool) []Course {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []Course{}
	for _, c := range m.courses {
		if keep(c) {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
