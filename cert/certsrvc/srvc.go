package certsrvc

import (
	"context"
	"time"

	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certevents"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/validation"
)

type CertRepo interface {
	InsertOrGet(ctx context.Context, c certdomain.Certificate) (certdomain.Certificate, bool, error)
	GetByTraineeAndCourse(ctx context.Context, traineeID, courseID int64) (certdomain.Certificate, error)
	Get(ctx context.Context, id int64) (certdomain.Certificate, error)
	GetByCode(ctx context.Context, code string) (certdomain.Certificate, error)
	List(ctx context.Context) ([]certdomain.Certificate, error)
	ListByTrainee(ctx context.Context, traineeID int64) ([]certdomain.Certificate, error)
	ListByCourse(ctx context.Context, courseID int64) ([]certdomain.Certificate, error)
}

type CertSrvc struct {
	IssueCert IssueCertCmd

	GetCert       decorator.QueryHandler[int64, certdomain.Certificate]
	GetCertByCode decorator.QueryHandler[string, certdomain.Certificate]
	ListCerts     decorator.QueryHandler[struct{}, []certdomain.Certificate]
	ListByTrainee decorator.QueryHandler[int64, []certdomain.Certificate]
	ListByCourse  decorator.QueryHandler[int64, []certdomain.Certificate]
}

func NewCertSrvc(repo CertRepo, validator validation.Client, publisher certevents.Publisher) *CertSrvc {
	return &CertSrvc{
		IssueCert: IssueCertCmdHandler{
			Validator:     validator,
			GetExisting:   repo.GetByTraineeAndCourse,
			InsertOrGet:   repo.InsertOrGet,
			PublishIssued: publisher.PublishIssued,
			NewCode:       certdomain.NewCode,
			Now:           time.Now,
		},
		GetCert:       decorator.QueryFunc[int64, certdomain.Certificate](repo.Get),
		GetCertByCode: decorator.QueryFunc[string, certdomain.Certificate](repo.GetByCode),
		ListCerts: decorator.QueryFunc[struct{}, []certdomain.Certificate](
			func(ctx context.Context, _ struct{}) ([]certdomain.Certificate, error) {
				return repo.List(ctx)
			}),
		ListByTrainee: decorator.QueryFunc[int64, []certdomain.Certificate](repo.ListByTrainee),
		ListByCourse:  decorator.QueryFunc[int64, []certdomain.Certificate](repo.ListByCourse),
	}
}
