package aws

import (
	"go-monitor/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(options *sqs.Options) {
		// LocalStack and other SQS-compatible endpoints
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
}
