package queue

import (
	"fmt"
	"strings"

	"linkforge/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// NewSQS returns an SQS client authenticated with the static credentials in
// conf.
func NewSQS(conf *config.AWSsqsConfig) (*sqs.SQS, error) {
	awsConf := &aws.Config{
		Region:      aws.String(conf.Region),
		Credentials: credentials.NewStaticCredentials(conf.ClientId, conf.ClientSecret, conf.ClientToken),
	}
	if conf.Endpoint != "" {
		awsConf.Endpoint = aws.String(conf.Endpoint)
	}

	sess, err := session.NewSession(awsConf)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("cannot assign session with credentials: %w", err)
	}

	return sqs.New(sess), nil
}

func isFifo(queueUrl string) bool {
	return strings.HasSuffix(queueUrl, ".fifo")
}
