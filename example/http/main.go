package main

import (
	"go-monitor/pkg/http"
	"go-monitor/pkg/log"
)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

type APIErrorResponse struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type AlertWebhookRequest struct {
	Dependency string `json:"dependency"`
	Status     string `json:"status"`
	Detail     string `json:"detail"`
}

type AlertWebhookResponse struct {
	ID       string `json:"id"`
	Received bool   `json:"received"`
}

func main() {
	// Client options with JSON as the default content type
	clientOptions := http.ClientOptions{
		FollowRedirect:     true,
		Dismiss404:         false,
		DefaultHeaders:     map[string]string{"Authorization": "Bearer token"},
		DefaultContentType: "application/json",
	}

	// Probing a status endpoint the way the external-api gateway does
	client := http.NewHttpClient("http://localhost:9090", clientOptions)

	success, failure, status, err := client.Get("/status", nil, nil, &StatusResponse{}, nil)

	if err != nil {
		log.Errorw("Status probe failed", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Status probe succeeded", "status", status, "body", success)
	}

	// A request that decodes an error payload on non-2xx responses
	queryParams := map[string]string{
		"verbose": "true",
	}

	success, failure, status, err = client.Get("/status/deep", queryParams, nil, &StatusResponse{}, &APIErrorResponse{})

	if err != nil {
		log.Errorw("Deep status probe failed", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Deep status probe succeeded", "status", status, "body", success)
	}

	// Posting an alert to a webhook receiver
	alertBody := AlertWebhookRequest{
		Dependency: "database",
		Status:     "unhealthy",
		Detail:     "connection refused",
	}

	success, failure, status, err = client.Post("/alerts", nil, nil, alertBody, &AlertWebhookResponse{}, nil)

	if err != nil {
		log.Errorw("Alert delivery failed", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Alert delivered", "status", status, "body", success)
	}

	// The same POST through the request builder
	requestSuccessBody, requestErrorBody, requestStatus, requestErr := client.Request().
		WithMethod(http.POST).
		WithPath("/alerts").
		WithBody(alertBody).
		WithSuccessResp(&AlertWebhookResponse{}).
		Execute()

	if requestErr != nil {
		log.Errorw("Alert delivery failed", "status", requestStatus, "error", requestErr, "body", requestErrorBody)
	} else {
		log.Infow("Alert delivered", "status", requestStatus, "body", requestSuccessBody)
	}

	// Plain-text responses decode into a string target
	textClient := http.NewHttpClient("http://localhost:9090", http.ClientOptions{DefaultContentType: "text/plain"})
	var textResponse string
	textSuccess, textFailure, textStatus, textErr := textClient.Get("/version", nil, nil, &textResponse, nil)
	if textErr != nil {
		log.Errorw("Version request failed", "status", textStatus, "error", textErr, "body", textFailure)
	} else {
		log.Infow("Version request succeeded", "status", textStatus, "body", textSuccess)
	}
}
