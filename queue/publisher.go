package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"linkforge/config"
	"linkforge/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
)

// Publisher sends JSON encoded values to an SQS queue. On FIFO queues every
// message shares one message group so the queue keeps them in send order.
type Publisher struct {
	queue    sqsiface.SQSAPI
	queueUrl string
	groupId  string
	logger   log15.Logger
}

func NewPublisher(queue sqsiface.SQSAPI, conf *config.Config, logger log15.Logger) *Publisher {
	return &Publisher{
		queue:    queue,
		queueUrl: conf.Aws.QueueUrl,
		groupId:  conf.Queue.GroupId,
		logger:   logger.New("queue", conf.Aws.QueueUrl),
	}
}

func (p *Publisher) Publish(ctx context.Context, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	input := &sqs.SendMessageInput{
		DelaySeconds: aws.Int64(0),
		MessageBody:  aws.String(string(body)),
		QueueUrl:     &p.queueUrl,
	}
	if isFifo(p.queueUrl) {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("deduplication id: %w", err)
		}
		input.MessageGroupId = aws.String(p.groupId)
		input.MessageDeduplicationId = aws.String(id.String())
	}

	if _, err := p.queue.SendMessageWithContext(ctx, input); err != nil {
		p.logger.Error("Error while sending message", "error", err)
		return err
	}
	return nil
}

// PublishList sends the elements of l from head to tail and returns how many
// were sent. It stops at the first failure.
func PublishList[T any](ctx context.Context, p *Publisher, l *types.List[T]) (int, error) {
	sent := 0
	for v := range l.All() {
		if err := p.Publish(ctx, v); err != nil {
			return sent, fmt.Errorf("publish element %d: %w", sent, err)
		}
		sent++
	}
	p.logger.Info("Published list", "length", sent)
	return sent, nil
}
