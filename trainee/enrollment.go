package trainee

import (
	"context"

	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/srvcerror"
)

// Enroll registers the trainee for a course. The (trainee, course) pair is
// unique; a second attempt fails with already_enrolled.
func (s *TraineeSrvc) Enroll(ctx context.Context, traineeID, courseID int64) (Enrollment, error) {
	if courseID <= 0 {
		return Enrollment{}, srvcerror.ErrInvalidRequest("courseId is required")
	}
	if _, err := s.trainees.GetTrainee(ctx, traineeID); err != nil {
		return Enrollment{}, err
	}
	e, err := s.enrollments.CreateEnrollment(ctx, Enrollment{
		TraineeID:  traineeID,
		CourseID:   courseID,
		Status:     EnrollmentEnrolled,
		EnrolledAt: s.now(),
	})
	if err != nil {
		return Enrollment{}, err
	}
	logger.FromContext(ctx).Info("enrolled trainee",
		"trainee_id", traineeID, "course_id", courseID, "enrollment_id", e.ID)
	return e, nil
}

func (s *TraineeSrvc) ListEnrollments(ctx context.Context, traineeID int64) ([]Enrollment, error) {
	return s.enrollments.ListEnrollmentsByTrainee(ctx, traineeID)
}

func (s *TraineeSrvc) UpdateEnrollmentStatus(ctx context.Context, id int64, status EnrollmentStatus) (Enrollment, error) {
	if !status.IsKnown() {
		return Enrollment{}, ErrUnknownEnrollmentStatus(string(status))
	}
	if err := s.enrollments.UpdateEnrollmentStatus(ctx, id, status); err != nil {
		return Enrollment{}, err
	}
	return s.enrollments.GetEnrollment(ctx, id)
}
