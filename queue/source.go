package queue

import (
	"context"
	"encoding/json"

	"linkforge/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/inconshreveable/log15"
)

// Source reads JSON encoded values of type T from an SQS queue in the order
// the queue hands them out. It satisfies types.Source.
//
// SQS has no end-of-stream marker, so the source reports exhaustion after
// IdlePolls consecutive receives come back empty.
type Source[T any] struct {
	queue       sqsiface.SQSAPI
	queueUrl    string
	waitTime    int64
	maxMessages int64
	idlePolls   int
	logger      log15.Logger

	pending []*sqs.Message
	done    bool
}

func NewSource[T any](queue sqsiface.SQSAPI, conf *config.Config, logger log15.Logger) *Source[T] {
	return &Source[T]{
		queue:       queue,
		queueUrl:    conf.Aws.QueueUrl,
		waitTime:    conf.Queue.WaitTimeSeconds,
		maxMessages: conf.Queue.MaxMessages,
		idlePolls:   conf.Queue.IdlePolls,
		logger:      logger.New("queue", conf.Aws.QueueUrl),
	}
}

func (s *Source[T]) Next(ctx context.Context) (value T, ok bool, err error) {
	idle := 0
	for !s.done {
		for len(s.pending) > 0 {
			message := s.pending[0]
			s.pending = s.pending[1:]

			var v T
			decodeErr := json.Unmarshal([]byte(aws.StringValue(message.Body)), &v)
			s.deleteMessage(ctx, message)
			if decodeErr != nil {
				s.logger.Error("Cannot unmarshal message", "id", aws.StringValue(message.MessageId), "error", decodeErr.Error())
				continue
			}
			return v, true, nil
		}

		if idle >= s.idlePolls {
			s.done = true
			break
		}

		messages, err := s.receive(ctx)
		if err != nil {
			return value, false, err
		}
		if len(messages) == 0 {
			idle++
			continue
		}
		idle = 0
		s.pending = messages
	}
	return value, false, nil
}

func (s *Source[T]) receive(ctx context.Context) ([]*sqs.Message, error) {
	msgResult, err := s.queue.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		AttributeNames: []*string{
			aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
		},
		MessageAttributeNames: []*string{
			aws.String(sqs.QueueAttributeNameAll),
		},
		QueueUrl:            &s.queueUrl,
		MaxNumberOfMessages: aws.Int64(s.maxMessages),
		WaitTimeSeconds:     aws.Int64(s.waitTime),
	})
	if err != nil {
		s.logger.Error("Error while receiving messages", "error", err.Error())
		return nil, err
	}
	s.logger.Debug("Received messages", "count", len(msgResult.Messages))
	return msgResult.Messages, nil
}

func (s *Source[T]) deleteMessage(ctx context.Context, message *sqs.Message) {
	_, err := s.queue.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &s.queueUrl,
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		s.logger.Error("Error while deleting message", "id", aws.StringValue(message.MessageId), "error", err)
	}
}
