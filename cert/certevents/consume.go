package certevents

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// delay after a failed receive, doubled on each consecutive failure
var (
	receiveRetryDelay    = time.Second
	maxReceiveRetryDelay = 30 * time.Second
)

type sqsReceiver interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Consume long-polls the queue until ctx is cancelled and passes every
// decoded event to handle. A message is deleted only after handle
// succeeds; undecodable messages are deleted and logged.
func Consume(ctx context.Context, client sqsReceiver, queueURL string,
	handle func(ctx context.Context, ev CertificateIssued) error,
	logger *slog.Logger,
) error {
	retryDelay := receiveRetryDelay
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		output, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     10,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			logger.Error("failed to receive messages", "error", err, "retry_in", retryDelay)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
			retryDelay = min(retryDelay*2, maxReceiveRetryDelay)
			continue
		}
		retryDelay = receiveRetryDelay

		for _, msg := range output.Messages {
			if msg.Body == nil || msg.ReceiptHandle == nil {
				logger.Warn("skipping message without body or receipt handle")
				continue
			}

			ev, err := Decode(*msg.Body)
			if err != nil {
				logger.Error("dropping undecodable message", "error", err)
			} else if err := handle(ctx, ev); err != nil {
				logger.Error("failed to handle certificate event",
					"code", ev.CertificateCode, "error", err)
				continue
			}

			_, err = client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
				QueueUrl:      aws.String(queueURL),
				ReceiptHandle: msg.ReceiptHandle,
			})
			if err != nil {
				logger.Error("failed to ack message", "error", err)
			}
		}
	}
}
