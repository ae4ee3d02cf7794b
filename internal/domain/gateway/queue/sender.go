package queue

// BatchMessage is one message in a batch send, identified so the result
// can report its outcome individually.
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult reports which message IDs were accepted and which failed.
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// Sender delivers JSON payloads to a named queue. The alert notifier
// uses it to forward events without knowing the transport behind it.
type Sender interface {
	SendMessage(queueName string, body any) error
	SendMessageBatch(queueName string, messages []BatchMessage) (*BatchResult, error)
}
