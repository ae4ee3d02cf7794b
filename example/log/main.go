package main

import (
	"time"

	"go-monitor/pkg/log"

	"go.uber.org/zap"
)

type checkOutcome struct {
	Dependency string `json:"dependency"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
}

func main() {

	var healthy bool = true
	var dependency string = "database"
	var consecutiveFailures int64 = 0
	var responseSeconds float64 = 0.042
	outcome := checkOutcome{
		Dependency: "redis",
		Status:     "healthy",
		Attempts:   1,
	}

	// Remember to set APPLICATION_NAME env
	log.Info("Probe finished with the strongly typed logger. You can use log.Info, log.Debug, log.Error, etc.",
		zap.Bool("healthy", healthy),
		zap.String("dependency", dependency),
		zap.Int64p("consecutiveFailures", &consecutiveFailures),
		zap.Float64("responseSeconds", responseSeconds),
		zap.Any("outcome", outcome),
	)

	log.Infow("Probe finished with the sugared logger (key-value pairs). You can use log.Infow, log.Debugw, log.Errorw, etc.",
		"healthy", healthy,
		"dependency", dependency,
		"consecutiveFailures", consecutiveFailures,
		"responseSeconds", responseSeconds,
		"outcome", outcome)

	log.Infof("Sugared formatter variant, log.Infof, log.Debugf, log.Errorf."+
		" Example message: 'dependency %s answered in %v'", dependency, 42*time.Millisecond)
}
