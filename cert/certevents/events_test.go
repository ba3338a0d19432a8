package certevents_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSqs struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSqs) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func testCert() certdomain.Certificate {
	c := certdomain.New(3, 4, "Go", "CERT-ABCDEF012345", time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))
	c.ID = 11
	return c
}

func TestSqsPublisher(t *testing.T) {
	fake := &fakeSqs{}
	pub := certevents.NewSqsPublisher(fake, "https://sqs.example/queue")

	require.NoError(t, pub.PublishIssued(context.Background(), testCert()))
	require.Len(t, fake.inputs, 1)
	assert.Equal(t, "https://sqs.example/queue", *fake.inputs[0].QueueUrl)

	ev, err := certevents.Decode(*fake.inputs[0].MessageBody)
	require.NoError(t, err)
	assert.Equal(t, certevents.EventTypeCertificateIssued, ev.Type)
	assert.Equal(t, int64(11), ev.CertificateID)
	assert.Equal(t, "CERT-ABCDEF012345", ev.CertificateCode)
	assert.Equal(t, "2026-03-10", ev.IssueDate)
	assert.Equal(t, "2028-03-10", ev.ValidUntil)
}

func TestSqsPublisherError(t *testing.T) {
	fake := &fakeSqs{err: errors.New("throttled")}
	err := certevents.NewSqsPublisher(fake, "q").PublishIssued(context.Background(), testCert())
	assert.ErrorContains(t, err, "throttled")
}

func TestDecodeGarbage(t *testing.T) {
	_, err := certevents.Decode("not base64!")
	assert.Error(t, err)
}
