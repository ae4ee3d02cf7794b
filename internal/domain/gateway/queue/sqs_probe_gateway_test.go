package queue

import (
	"context"
	"errors"
	"testing"

	"go-monitor/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQSAPI struct {
	urlErr     error
	attrsErr   error
	attributes map[string]string
	urlCalls   int
}

func (f *fakeSQSAPI) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.urlCalls++
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	return &sqs.GetQueueUrlOutput{
		QueueUrl: aws.String("https://sqs.local/" + aws.ToString(params.QueueName)),
	}, nil
}

func (f *fakeSQSAPI) GetQueueAttributes(_ context.Context, _ *sqs.GetQueueAttributesInput, _ ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	if f.attrsErr != nil {
		return nil, f.attrsErr
	}
	return &sqs.GetQueueAttributesOutput{Attributes: f.attributes}, nil
}

func TestSQSProbeGateway_BacklogThreshold(t *testing.T) {
	tests := []struct {
		name       string
		messages   string
		threshold  int
		wantStatus model.HealthStatus
	}{
		{name: "below threshold", messages: "10", threshold: 100, wantStatus: model.StatusHealthy},
		{name: "at threshold", messages: "100", threshold: 100, wantStatus: model.StatusHealthy},
		{name: "above threshold", messages: "101", threshold: 100, wantStatus: model.StatusDegraded},
		{name: "threshold disabled", messages: "50000", threshold: 0, wantStatus: model.StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSQSAPI{attributes: map[string]string{
				"ApproximateNumberOfMessages":           tt.messages,
				"ApproximateNumberOfMessagesNotVisible": "2",
			}}
			gateway := NewSQSProbeGateway(client, "jobs", tt.threshold)

			finding, err := gateway.Probe(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, finding.Status)
			assert.Equal(t, tt.messages, finding.Details["approximate_messages"])
			assert.Equal(t, "2", finding.Details["approximate_in_flight"])
			if tt.wantStatus == model.StatusDegraded {
				assert.Contains(t, finding.Message, "exceeds threshold")
			}
		})
	}
}

func TestSQSProbeGateway_QueueURLResolvedOnce(t *testing.T) {
	client := &fakeSQSAPI{attributes: map[string]string{}}
	gateway := NewSQSProbeGateway(client, "jobs", 0)

	_, err := gateway.Probe(context.Background())
	require.NoError(t, err)
	_, err = gateway.Probe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, client.urlCalls)
}

func TestSQSProbeGateway_Errors(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeSQSAPI
		wantErr string
	}{
		{
			name:    "queue url lookup fails",
			client:  &fakeSQSAPI{urlErr: errors.New("queue does not exist")},
			wantErr: "failed to get queue URL",
		},
		{
			name:    "attributes lookup fails",
			client:  &fakeSQSAPI{attrsErr: errors.New("access denied")},
			wantErr: "failed to get queue attributes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := NewSQSProbeGateway(tt.client, "jobs", 100)

			_, err := gateway.Probe(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
