package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// sqsBatchLimit is the maximum number of entries SQS accepts per batch request.
const sqsBatchLimit = 10

// BatchMessage is a single message in a batch send
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult reports which message IDs were accepted and which failed
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// SQSClient defines the SQS operations the sender needs
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender publishes JSON messages to SQS queues. Queue URLs are resolved
// once per queue name and cached for the lifetime of the sender.
type Sender struct {
	sqsClient SQSClient

	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSender creates a Sender backed by the given SQS client
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes body to JSON and sends it to the named queue
func (s *Sender) SendMessage(queueName string, body any) error {
	ctx := context.Background()

	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// SendMessageBatch splits messages into SQS-sized batches and sends them
// in parallel, reporting per-message outcomes in the returned BatchResult.
func (s *Sender) SendMessageBatch(queueName string, messages []BatchMessage) (*BatchResult, error) {
	if len(messages) == 0 {
		return &BatchResult{
			Successful: []string{},
			Failed:     []string{},
		}, nil
	}

	ctx := context.Background()

	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	var batches [][]BatchMessage
	for i := 0; i < len(messages); i += sqsBatchLimit {
		end := i + sqsBatchLimit
		if end > len(messages) {
			end = len(messages)
		}
		batches = append(batches, messages[i:end])
	}

	resultChan := make(chan *BatchResult, len(batches))
	var wg sync.WaitGroup

	for _, batch := range batches {
		wg.Add(1)
		go func(batchMessages []BatchMessage) {
			defer wg.Done()

			batchResult, err := s.sendBatch(ctx, queueURL, batchMessages)
			if err != nil {
				// The whole request failed, so every message in it failed
				failedResult := &BatchResult{
					Successful: []string{},
					Failed:     make([]string, len(batchMessages)),
				}
				for i, msg := range batchMessages {
					failedResult.Failed[i] = msg.MessageID
				}
				resultChan <- failedResult
				return
			}

			resultChan <- batchResult
		}(batch)
	}

	wg.Wait()
	close(resultChan)

	finalResult := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}
	for batchResult := range resultChan {
		finalResult.Successful = append(finalResult.Successful, batchResult.Successful...)
		finalResult.Failed = append(finalResult.Failed, batchResult.Failed...)
	}

	return finalResult, nil
}

// sendBatch sends one batch of at most sqsBatchLimit messages. Messages
// whose bodies fail to serialize are reported as failed without aborting
// the rest of the batch.
func (s *Sender) sendBatch(ctx context.Context, queueURL string, messages []BatchMessage) (*BatchResult, error) {
	if len(messages) > sqsBatchLimit {
		return nil, fmt.Errorf("batch size cannot exceed %d messages, got %d", sqsBatchLimit, len(messages))
	}

	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))
	serializationFailed := make([]string, 0)

	for _, msg := range messages {
		jsonBody, err := json.Marshal(msg.Body)
		if err != nil {
			serializationFailed = append(serializationFailed, msg.MessageID)
			continue
		}

		messageBody := string(jsonBody)
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          &msg.MessageID,
			MessageBody: &messageBody,
		})
	}

	result := &BatchResult{
		Successful: []string{},
		Failed:     serializationFailed,
	}

	if len(entries) == 0 {
		return result, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: &queueURL,
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	for _, success := range output.Successful {
		if success.Id != nil {
			result.Successful = append(result.Successful, *success.Id)
		}
	}
	for _, failed := range output.Failed {
		if failed.Id != nil {
			result.Failed = append(result.Failed, *failed.Id)
		}
	}

	return result, nil
}

// queueURL resolves the URL for a queue name, consulting the cache first
func (s *Sender) queueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	url, ok := s.queueURLs[queueName]
	s.mu.RUnlock()
	if ok {
		return url, nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.mu.Lock()
	s.queueURLs[queueName] = *result.QueueUrl
	s.mu.Unlock()

	return *result.QueueUrl, nil
}
