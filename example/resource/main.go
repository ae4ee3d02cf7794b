package main

import (
	"fmt"
	"reflect"

	"go-monitor/pkg/resource"
)

func main() {
	// Remember to set the PROPERTIES_FILE_PATH env. Default location in init is configs/application.yml
	resource.Init("configs/application.yml")
	var valueString = "Value: "
	var valueType = ", Type: "

	// Get Raw Value
	var rawNameValue = resource.Get("app.name")
	var rawPortValue = resource.Get("app.server.port")
	fmt.Println("Raw String,", valueString, rawNameValue, valueType, reflect.TypeOf(rawNameValue))
	fmt.Println("Raw Port,", valueString, rawPortValue, valueType, reflect.TypeOf(rawPortValue))

	// Get Formatted Value
	var nameValue = resource.GetString("app.name")
	var portAsString = resource.GetString("app.server.port")
	fmt.Println("String parsed,", valueString, nameValue, valueType, reflect.TypeOf(nameValue))
	fmt.Println("Port parsed to String,", valueString, portAsString, valueType, reflect.TypeOf(portAsString))

	var portValue = resource.GetInt("app.server.port")
	var nameAsInt = resource.GetInt("app.name")
	fmt.Println("Port parsed to int,", valueString, portValue, valueType, reflect.TypeOf(portValue))
	fmt.Println("Non-numeric String parsed to Int,", valueString, nameAsInt, valueType, reflect.TypeOf(nameAsInt))

	// Durations come straight out of ${ENV:default} placeholders like 60s
	var regularInterval = resource.GetDuration("app.monitor.regular-interval")
	var criticalInterval = resource.GetDuration("app.monitor.critical-interval")
	fmt.Println("Regular sweep interval,", valueString, regularInterval, valueType, reflect.TypeOf(regularInterval))
	fmt.Println("Critical sweep interval,", valueString, criticalInterval, valueType, reflect.TypeOf(criticalInterval))

	var retries = resource.GetInt("app.monitor.default-retries")
	var backoff = resource.GetDuration("app.monitor.retry-backoff-step")
	fmt.Println("Probe retries,", valueString, retries, valueType, reflect.TypeOf(retries))
	fmt.Println("Retry backoff step,", valueString, backoff, valueType, reflect.TypeOf(backoff))

	var databaseCritical = resource.GetBool("app.monitor.dependencies.database.critical")
	fmt.Println("Database is critical,", valueString, databaseCritical, valueType, reflect.TypeOf(databaseCritical))
}
