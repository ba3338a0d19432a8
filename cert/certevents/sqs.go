package certevents

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/skilldev/backend/cert/certdomain"
)

type sqsSender interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type SqsPublisher struct {
	client   sqsSender
	queueURL string
}

func NewSqsPublisher(client sqsSender, queueURL string) *SqsPublisher {
	return &SqsPublisher{client: client, queueURL: queueURL}
}

func NewSqsClient(ctx context.Context, region string) (*sqs.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return sqs.NewFromConfig(cfg), nil
}

func (p *SqsPublisher) PublishIssued(ctx context.Context, c certdomain.Certificate) error {
	body, err := Encode(NewCertificateIssued(c))
	if err != nil {
		return err
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to send certificate event to sqs: %w", err)
	}
	return nil
}
