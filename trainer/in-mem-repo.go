package trainer

import (
	"context"
	"sort"
	"sync"
)

type InMemTrainerRepo struct {
	lock     sync.Mutex
	nextID   int64
	trainers map[int64]Trainer
}

func NewInMemTrainerRepo() *InMemTrainerRepo {
	return &InMemTrainerRepo{trainers: make(map[int64]Trainer)}
}

func (m *InMemTrainerRepo) CreateTrainer(ctx context.Context, t Trainer) (Trainer, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.nextID++
	t.ID = m.nextID
	m.trainers[t.ID] = t
	return t, nil
}

func (m *InMemTrainerRepo) UpdateTrainer(ctx context.Context, t Trainer) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.trainers[t.ID]; !ok {
		return ErrTrainerNotFound()
	}
	m.trainers[t.ID] = t
	return nil
}

func (m *InMemTrainerRepo) DeleteTrainer(ctx context.Context, id int64) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.trainers[id]; !ok {
		return ErrTrainerNotFound()
	}
	delete(m.trainers, id)
	return nil
}

func (m *InMemTrainerRepo) GetTrainer(ctx context.Context, id int64) (Trainer, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	t, ok := m.trainers[id]
	if !ok {
		return Trainer{}, ErrTrainerNotFound()
	}
	return t, nil
}

func (m *InMemTrainerRepo) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return m.filter(func(Trainer) bool { return true }), nil
}

func (m *InMemTrainerRepo) ListAvailableTrainers(ctx context.Context) ([]Trainer, error) {
	return m.filter(func(t Trainer) bool { return t.Available }), nil
}

func (m *InMemTrainerRepo) filter(keep func(Trainer) bool) []Trainer {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []Trainer{}
	for _, t := range m.trainers {
		if keep(t) {
			res = append(res, t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
