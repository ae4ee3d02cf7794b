package main

import (
	"context"
	"go-monitor/pkg/log"
	sqslib "go-monitor/pkg/sqs"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type alertPayload struct {
	Kind    string `json:"kind"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

func main() {
	ctx := context.Background()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-west-2"),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	// create SQS Client
	sqsClient := sqs.NewFromConfig(cfg)

	// Set Queue Name
	queueName := "test-queue"

	// Create Sender
	sender := sqslib.NewSender(sqsClient)

	// Send a single message. The body is marshalled to JSON automatically.
	payload := alertPayload{
		Kind:    "status_change",
		Key:     "overall",
		Message: "overall status changed from healthy to degraded",
	}
	if err := sender.SendMessage(queueName, payload); err != nil {
		log.Fatalf("Failed to send message: %v", err)
	}
	log.Infof("Sent single message to %s", queueName)

	// Send a batch. Batches above ten messages are split and sent in parallel.
	batch := []sqslib.BatchMessage{
		{MessageID: "alert-1", Body: alertPayload{Kind: "slow_request", Key: "GET /users", Message: "latency above threshold"}},
		{MessageID: "alert-2", Body: alertPayload{Kind: "slow_query", Key: "SELECT", Message: "query above threshold"}},
		{MessageID: "alert-3", Body: alertPayload{Kind: "high_memory_usage", Key: "memory", Message: "heap usage above alert percent"}},
	}

	result, err := sender.SendMessageBatch(queueName, batch)
	if err != nil {
		log.Fatalf("Failed to send batch: %v", err)
	}
	log.Infof("Batch sent: %d successful, %d failed", len(result.Successful), len(result.Failed))
	for _, id := range result.Failed {
		log.Warnf("Message %s was not delivered", id)
	}
}
