package assmsrvc

import (
	"context"
	"sort"
	"sync"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
)

type InMemAssmRepo struct {
	lock        sync.Mutex
	nextAssmID  int64
	nextQuestID int64
	assms       map[int64]assmdomain.Assessment
	questions   map[int64]assmdomain.Question
}

func NewInMemAssmRepo() *InMemAssmRepo {
	return &InMemAssmRepo{
		assms:     make(map[int64]assmdomain.Assessment),
		questions: make(map[int64]assmdomain.Question),
	}
}

func (m *InMemAssmRepo) CreateAssessment(ctx context.Context, a assmdomain.Assessment) (assmdomain.Assessment, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.nextAssmID++
	a.ID = m.nextAssmID
	m.assms[a.ID] = a
	return a, nil
}

func (m *InMemAssmRepo) UpdateAssessment(ctx context.Context, a assmdomain.Assessment) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.assms[a.ID]; !ok {
		return assmerror.ErrAssessmentNotFound()
	}
	m.assms[a.ID] = a
	return nil
}

func (m *InMemAssmRepo) GetAssessment(ctx context.Context, id int64) (assmdomain.Assessment, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	a, ok := m.assms[id]
	if !ok {
		return assmdomain.Assessment{}, assmerror.ErrAssessmentNotFound()
	}
	return a, nil
}

func (m *InMemAssmRepo) ListAssessments(ctx context.Context) ([]assmdomain.Assessment, error) {
	return m.filterAssms(func(assmdomain.Assessment) bool { return true }), nil
}

func (m *InMemAssmRepo) ListAssessmentsByCourse(ctx context.Context, courseID int64) ([]assmdomain.Assessment, error) {
	return m.filterAssms(func(a assmdomain.Assessment) bool {
		return a.CourseID != nil && *a.CourseID == courseID
	}), nil
}

func (m *InMemAssmRepo) filterAssms(keep func(assmdomain.Assessment) bool) []assmdomain.Assessment {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []assmdomain.Assessment{}
	for _, a := range m.assms {
		if keep(a) {
			res = append(res, a)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (m *InMemAssmRepo) CreateQuestion(ctx context.Context, q assmdomain.Question) (assmdomain.Question, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.assms[q.AssessmentID]; !ok {
		return assmdomain.Question{}, assmerror.ErrAssessmentNotFound()
	}
	m.nextQuestID++
	q.ID = m.nextQuestID
	if q.Options == nil {
		q.Options = []string{}
	}
	m.questions[q.ID] = q
	return q, nil
}

func (m *InMemAssmRepo) ListQuestions(ctx context.Context, assessmentID int64) ([]assmdomain.Question, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []assmdomain.Question{}
	for _, q := range m.questions {
		if q.AssessmentID == assessmentID {
			res = append(res, q)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

type submKey struct {
	assessmentID int64
	traineeID    int64
}

// InMemSubmRepo enforces one submission per (assessment, trainee) like the
// postgres unique index does.
type InMemSubmRepo struct {
	lock   sync.Mutex
	nextID int64
	subms  map[int64]assmdomain.Submission
	byPair map[submKey]int64
}

func NewInMemSubmRepo() *InMemSubmRepo {
	return &InMemSubmRepo{
		subms:  make(map[int64]assmdomain.Submission),
		byPair: make(map[submKey]int64),
	}
}

func (m *InMemSubmRepo) CreateSubmission(ctx context.Context, s assmdomain.Submission) (assmdomain.Submission, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	key := submKey{s.AssessmentID, s.TraineeID}
	if _, ok := m.byPair[key]; ok {
		return assmdomain.Submission{}, assmerror.ErrDuplicateSubmission()
	}
	m.nextID++
	s.ID = m.nextID
	m.subms[s.ID] = s
	m.byPair[key] = s.ID
	return s, nil
}

func (m *InMemSubmRepo) UpdateSubmission(ctx context.Context, s assmdomain.Submission) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.subms[s.ID]; !ok {
		return assmerror.ErrSubmissionNotFound()
	}
	m.subms[s.ID] = s
	return nil
}

func (m *InMemSubmRepo) GetSubmission(ctx context.Context, id int64) (assmdomain.Submission, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	s, ok := m.subms[id]
	if !ok {
		return assmdomain.Submission{}, assmerror.ErrSubmissionNotFound()
	}
	return s, nil
}

func (m *InMemSubmRepo) GetSubmissionByTrainee(ctx context.Context, assessmentID, traineeID int64) (assmdomain.Submission, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	id, ok := m.byPair[submKey{assessmentID, traineeID}]
	if !ok {
		return assmdomain.Submission{}, assmerror.ErrSubmissionNotFound()
	}
	return m.subms[id], nil
}

func (m *InMemSubmRepo) SubmissionExists(ctx context.Context, assessmentID, traineeID int64) (bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	_, ok := m.byPair[submKey{assessmentID, traineeID}]
	return ok, nil
}

func (m *InMemSubmRepo) ListSubmissionsByAssessment(ctx context.Context, assessmentID int64) ([]assmdomain.Submission, error) {
	return m.filter(func(s assmdomain.Submission) bool { return s.AssessmentID == assessmentID }), nil
}

func (m *InMemSubmRepo) ListSubmissionsByTrainee(ctx context.Context, traineeID int64) ([]assmdomain.Submission, error) {
	return m.filter(func(s assmdomain.Submission) bool { return s.TraineeID == traineeID }), nil
}

func (m *InMemSubmRepo) filter(keep func(assmdomain.Submission) bool) []assmdomain.Submission {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []assmdomain.Submission{}
	for _, s := range m.subms {
		if keep(s) {
			res = append(res, s)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
