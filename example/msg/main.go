package main

import (
	"encoding/json"
	"fmt"

	"go-monitor/pkg/msg"
)

type checkOutcome struct {
	Dependency string `json:"dependency"`
	Status     string `json:"status"`
}

func main() {
	// Remember to set the MESSAGES_FILE_PATH env. Default location in init is configs/messages.yml
	msg.Init("configs/messages.yml")
	var unknownDependency string = "monitor.error.unknown-dependency"

	// Message without placeholders
	fmt.Println(msg.GetMessage("app.start"))

	// Message with one placeholder
	fmt.Println(msg.GetMessage(unknownDependency, "payment-gateway"))

	// Message with several placeholders
	fmt.Println(msg.GetMessage("app.req-end", "GET", "/health", 200, "1.2ms", "req-1"))

	// Not found message
	fmt.Println(msg.GetMessage("monitor.error.missing"))

	// Struct placeholders are rendered as JSON, pre-marshaled or not
	outcome := checkOutcome{
		Dependency: "redis",
		Status:     "degraded",
	}
	var outcomeJSON, _ = json.Marshal(outcome)
	fmt.Println(msg.GetMessage(unknownDependency, string(outcomeJSON)))
	fmt.Println(msg.GetMessage(unknownDependency, outcome))
}
