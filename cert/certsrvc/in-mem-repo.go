package certsrvc

import (
	"context"
	"sort"
	"sync"

	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certerror"
)

type pairKey struct {
	traineeID int64
	courseID  int64
}

// InMemCertRepo keeps certificates in memory while enforcing the same
// uniqueness rules as the postgres schema.
type InMemCertRepo struct {
	lock   sync.Mutex
	nextID int64
	certs  map[int64]certdomain.Certificate
	byPair map[pairKey]int64
	byCode map[string]int64
}

func NewInMemCertRepo() *InMemCertRepo {
	return &InMemCertRepo{
		certs:  make(map[int64]certdomain.Certificate),
		byPair: make(map[pairKey]int64),
		byCode: make(map[string]int64),
	}
}

func (m *InMemCertRepo) InsertOrGet(ctx context.Context, c certdomain.Certificate) (certdomain.Certificate, bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if id, ok := m.byPair[pairKey{c.TraineeID, c.CourseID}]; ok {
		return m.certs[id], false, nil
	}
	if _, ok := m.byCode[c.Code]; ok {
		return certdomain.Certificate{}, false, certdomain.ErrCodeTaken
	}
	m.nextID++
	c.ID = m.nextID
	m.certs[c.ID] = c
	m.byPair[pairKey{c.TraineeID, c.CourseID}] = c.ID
	m.byCode[c.Code] = c.ID
	return c, true, nil
}

func (m *InMemCertRepo) GetByTraineeAndCourse(ctx context.Context, traineeID, courseID int64) (certdomain.Certificate, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	id, ok := m.byPair[pairKey{traineeID, courseID}]
	if !ok {
		return certdomain.Certificate{}, certerror.ErrCertificateNotFound()
	}
	return m.certs[id], nil
}

func (m *InMemCertRepo) Get(ctx context.Context, id int64) (certdomain.Certificate, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	c, ok := m.certs[id]
	if !ok {
		return certdomain.Certificate{}, certerror.ErrCertificateNotFound()
	}
	return c, nil
}

func (m *InMemCertRepo) GetByCode(ctx context.Context, code string) (certdomain.Certificate, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	id, ok := m.byCode[code]
	if !ok {
		return certdomain.Certificate{}, certerror.ErrCertificateNotFound()
	}
	return m.certs[id], nil
}

func (m *InMemCertRepo) List(ctx context.Context) ([]certdomain.Certificate, error) {
	return m.filter(func(certdomain.Certificate) bool { return true }), nil
}

func (m *InMemCertRepo) ListByTrainee(ctx context.Context, traineeID int64) ([]certdomain.Certificate, error) {
	return m.filter(func(c certdomain.Certificate) bool { return c.TraineeID == traineeID }), nil
}

func (m *InMemCertRepo) ListByCourse(ctx context.Context, courseID int64) ([]certdomain.Certificate, error) {
	return m.filter(func(c certdomain.Certificate) bool { return c.CourseID == courseID }), nil
}

func (m *InMemCertRepo) filter(keep func(certdomain.Certificate) bool) []certdomain.Certificate {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []certdomain.Certificate{}
	for _, c := range m.certs {
		if keep(c) {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
