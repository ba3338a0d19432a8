package trainee

import (
	"context"
	"sort"
	"sync"
)

type InMemTraineeRepo struct {
	lock     sync.Mutex
	nextID   int64
	trainees map[int64]Trainee
}

func NewInMemTraineeRepo() *InMemTraineeRepo {
	return &InMemTraineeRepo{trainees: make(map[int64]Trainee)}
}

// emailTakenLocked reports whether another trainee already holds email.
func (m *InMemTraineeRepo) emailTakenLocked(email *string, self int64) bool {
	if email == nil {
		return false
	}
	for id, t := range m.trainees {
		if id != self && t.Email != nil && *t.Email == *email {
			return true
		}
	}
	return false
}

func (m *InMemTraineeRepo) CreateTrainee(ctx context.Context, t Trainee) (Trainee, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.emailTakenLocked(t.Email, 0) {
		return Trainee{}, ErrEmailExists()
	}
	m.nextID++
	t.ID = m.nextID
	m.trainees[t.ID] = t
	return t, nil
}

func (m *InMemTraineeRepo) UpdateTrainee(ctx context.Context, t Trainee) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.trainees[t.ID]; !ok {
		return ErrTraineeNotFound()
	}
	if m.emailTakenLocked(t.Email, t.ID) {
		return ErrEmailExists()
	}
	m.trainees[t.ID] = t
	return nil
}

func (m *InMemTraineeRepo) DeleteTrainee(ctx context.Context, id int64) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.trainees[id]; !ok {
		return ErrTraineeNotFound()
	}
	delete(m.trainees, id)
	return nil
}

func (m *InMemTraineeRepo) GetTrainee(ctx context.Context, id int64) (Trainee, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	t, ok := m.trainees[id]
	if !ok {
		return Trainee{}, ErrTraineeNotFound()
	}
	return t, nil
}

func (m *InMemTraineeRepo) GetTraineeByEmail(ctx context.Context, email string) (Trainee, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, t := range m.trainees {
		if t.Email != nil && *t.Email == email {
			return t, nil
		}
	}
	return Trainee{}, ErrTraineeNotFound()
}

func (m *InMemTraineeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.emailTakenLocked(&email, 0), nil
}

func (m *InMemTraineeRepo) ListTrainees(ctx context.Context) ([]Trainee, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := make([]Trainee, 0, len(m.trainees))
	for _, t := range m.trainees {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

type InMemEnrollmentRepo struct {
	lock        sync.Mutex
	nextID      int64
	enrollments map[int64]Enrollment
}

func NewInMemEnrollmentRepo() *InMemEnrollmentRepo {
	return &InMemEnrollmentRepo{enrollments: make(map[int64]Enrollment)}
}

func (m *InMemEnrollmentRepo) CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, existing := range m.enrollments {
		if existing.TraineeID == e.TraineeID && existing.CourseID == e.CourseID {
			return Enrollment{}, ErrAlreadyEnrolled()
		}
	}
	m.nextID++
	e.ID = m.nextID
	m.enrollments[e.ID] = e
	return e, nil
}

func (m *InMemEnrollmentRepo) GetEnrollment(ctx context.Context, id int64) (Enrollment, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	e, ok := m.enrollments[id]
	if !ok {
		return Enrollment{}, ErrEnrollmentNotFound()
	}
	return e, nil
}

func (m *InMemEnrollmentRepo) UpdateEnrollmentStatus(ctx context.Context, id int64, status EnrollmentStatus) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	e, ok := m.enrollments[id]
	if !ok {
		return ErrEnrollmentNotFound()
	}
	e.Status = status
	m.enrollments[id] = e
	return nil
}

func (m *InMemEnrollmentRepo) ListEnrollmentsByTrainee(ctx context.Context, traineeID int64) ([]Enrollment, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []Enrollment{}
	for _, e := range m.enrollments {
		if e.TraineeID == traineeID {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}
