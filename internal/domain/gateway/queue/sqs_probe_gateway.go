package queue

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go-monitor/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI defines the SQS operations used by the probe
type SQSAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
}

// SQSProbeGateway probes an SQS queue by resolving its URL and querying its
// attributes. A backlog above the configured threshold degrades the
// dependency without failing it.
type SQSProbeGateway struct {
	client           SQSAPI
	queueName        string
	backlogThreshold int

	mu       sync.Mutex
	queueURL string
}

var _ ProbeGateway = (*SQSProbeGateway)(nil)

// NewSQSProbeGateway creates a new SQS probe gateway for the named queue. A
// backlog threshold of zero disables the backlog check.
func NewSQSProbeGateway(client SQSAPI, queueName string, backlogThreshold int) *SQSProbeGateway {
	return &SQSProbeGateway{
		client:           client,
		queueName:        queueName,
		backlogThreshold: backlogThreshold,
	}
}

func (gateway *SQSProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	queueURL, err := gateway.resolveQueueURL(ctx)
	if err != nil {
		return model.ProbeFinding{}, fmt.Errorf("failed to get queue URL for %s: %w", gateway.queueName, err)
	}

	attrs, err := gateway.client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: aws.String(queueURL),
		AttributeNames: []types.QueueAttributeName{
			types.QueueAttributeNameApproximateNumberOfMessages,
			types.QueueAttributeNameApproximateNumberOfMessagesNotVisible,
		},
	})
	if err != nil {
		return model.ProbeFinding{}, fmt.Errorf("failed to get queue attributes for %s: %w", gateway.queueName, err)
	}

	details := map[string]string{
		"queue": gateway.queueName,
	}
	backlog := 0
	if raw, ok := attrs.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]; ok {
		details["approximate_messages"] = raw
		if parsed, err := strconv.Atoi(raw); err == nil {
			backlog = parsed
		}
	}
	if raw, ok := attrs.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessagesNotVisible)]; ok {
		details["approximate_in_flight"] = raw
	}

	finding := model.ProbeFinding{
		Status:  model.StatusHealthy,
		Details: details,
	}
	if gateway.backlogThreshold > 0 && backlog > gateway.backlogThreshold {
		finding.Status = model.StatusDegraded
		finding.Message = fmt.Sprintf("queue backlog of %d messages exceeds threshold %d", backlog, gateway.backlogThreshold)
	}
	return finding, nil
}

// resolveQueueURL looks the queue URL up once and reuses it afterwards.
func (gateway *SQSProbeGateway) resolveQueueURL(ctx context.Context) (string, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if gateway.queueURL != "" {
		return gateway.queueURL, nil
	}
	out, err := gateway.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(gateway.queueName),
	})
	if err != nil {
		return "", err
	}
	gateway.queueURL = aws.ToString(out.QueueUrl)
	return gateway.queueURL, nil
}
