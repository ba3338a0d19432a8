package certevents

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/logger"
)

const EventTypeCertificateIssued = "CertificateIssued"

type CertificateIssued struct {
	Type            string    `json:"type"`
	CertificateID   int64     `json:"certificateId"`
	CertificateCode string    `json:"certificateCode"`
	TraineeID       int64     `json:"traineeId"`
	CourseID        int64     `json:"courseId"`
	CourseName      string    `json:"courseName"`
	IssueDate       string    `json:"issueDate"`
	ValidUntil      string    `json:"validUntil"`
	IssuedAt        time.Time `json:"issuedAt"`
}

func NewCertificateIssued(c certdomain.Certificate) CertificateIssued {
	return CertificateIssued{
		Type:            EventTypeCertificateIssued,
		CertificateID:   c.ID,
		CertificateCode: c.Code,
		TraineeID:       c.TraineeID,
		CourseID:        c.CourseID,
		CourseName:      c.CourseName,
		IssueDate:       c.IssueDate.String(),
		ValidUntil:      c.ValidUntil().String(),
		IssuedAt:        c.IssuedAt,
	}
}

// Publisher announces newly created certificates.
type Publisher interface {
	PublishIssued(ctx context.Context, c certdomain.Certificate) error
}

// Encode marshals an event to json, compresses it with zstd and base64
// encodes the result so it fits an SQS message body.
func Encode(ev CertificateIssued) (string, error) {
	jsonEv, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("failed to marshal event: %w", err)
	}

	zstdEncoder, err := zstd.NewWriter(nil)
	if err != nil {
		return "", fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer zstdEncoder.Close()

	compressed := zstdEncoder.EncodeAll(jsonEv, make([]byte, 0, len(jsonEv)))
	return base64.StdEncoding.EncodeToString(compressed), nil
}

func Decode(body string) (CertificateIssued, error) {
	compressed, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return CertificateIssued{}, fmt.Errorf("failed to decode base64: %w", err)
	}

	zstdDecoder, err := zstd.NewReader(nil)
	if err != nil {
		return CertificateIssued{}, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer zstdDecoder.Close()

	jsonEv, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return CertificateIssued{}, fmt.Errorf("failed to decompress event: %w", err)
	}

	var ev CertificateIssued
	if err := json.Unmarshal(jsonEv, &ev); err != nil {
		return CertificateIssued{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return ev, nil
}

// LogPublisher only logs events. Used when no queue is configured.
type LogPublisher struct{}

func (LogPublisher) PublishIssued(ctx context.Context, c certdomain.Certificate) error {
	logger.FromContext(ctx).Info("certificate issued",
		"certificate_id", c.ID,
		"code", c.Code,
		"trainee_id", c.TraineeID,
		"course_id", c.CourseID)
	return nil
}
