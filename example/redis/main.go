package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go-monitor/pkg/redis"
)

func main() {
	fmt.Println("Testing Redis Package with Comprehensive Examples...")

	// =============================================================================
	// CONFIGURATION EXAMPLES
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("CONFIGURATION EXAMPLES")
	fmt.Println(strings.Repeat("=", 60))

	// Example 1: Default configuration
	fmt.Println("\n1. Using default configuration:")
	defaultConfig := redis.NewRedisConfig()
	client1 := redis.NewClient(defaultConfig)
	defer client1.Close()

	ctx := context.Background()
	err := client1.Set(ctx, "default_test", "default_value", time.Minute)
	if err != nil {
		log.Printf("Default config test failed: %v", err)
	} else {
		fmt.Println("✓ Default configuration works")
	}

	// Example 2: Custom configuration with fluent API
	fmt.Println("\n2. Using custom configuration with fluent API:")
	customConfig := redis.NewRedisConfig().
		WithHost("localhost").
		WithPort(6379).
		WithPassword("").
		WithDatabase(0).
		WithPoolSize(20).
		WithMinIdleConns(10).
		WithMaxRetries(5).
		WithDialTimeout(10 * time.Second).
		WithReadTimeout(5 * time.Second).
		WithWriteTimeout(5 * time.Second).
		WithPoolTimeout(6 * time.Second)

	client2 := redis.NewClient(customConfig)
	defer client2.Close()

	err = client2.Set(ctx, "custom_test", "custom_value", time.Minute)
	if err != nil {
		log.Printf("Custom config test failed: %v", err)
	} else {
		fmt.Println("✓ Custom configuration works")
	}

	// Example 3: Configuration validation
	fmt.Println("\n3. Testing configuration validation:")
	validConfig := redis.NewRedisConfig().WithPort(6379)
	err = validConfig.Validate()
	if err != nil {
		log.Printf("Valid config validation failed: %v", err)
	} else {
		fmt.Println("✓ Valid configuration passes validation")
	}

	// Example 4: Invalid configuration panics when creating the client
	fmt.Println("\n4. Testing invalid configuration (will panic):")
	demonstrateInvalidConfig()

	// =============================================================================
	// BASIC OPERATIONS EXAMPLES
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("BASIC OPERATIONS EXAMPLES")
	fmt.Println(strings.Repeat("=", 60))

	// Create Redis configuration using fluent API
	config := redis.NewRedisConfig().
		WithHost("localhost").
		WithPort(6379).
		WithPassword("").
		WithDatabase(0).
		WithPoolSize(10).
		WithMinIdleConns(5).
		WithDialTimeout(5 * time.Second).
		WithReadTimeout(3 * time.Second).
		WithWriteTimeout(3 * time.Second).
		WithPoolTimeout(4 * time.Second)

	// Create Redis client
	client := redis.NewClient(config)
	defer client.Close()

	// Test basic operations
	fmt.Println("\n1. Testing basic Redis operations...")

	// Set a value
	err = client.Set(ctx, "test_key", "test_value", time.Hour)
	if err != nil {
		log.Fatalf("Failed to set value: %v", err)
	}
	fmt.Println("✓ Set value successfully")

	// Get a value
	value, err := client.Get(ctx, "test_key")
	if err != nil {
		log.Fatalf("Failed to get value: %v", err)
	}
	fmt.Printf("✓ Got value: %s\n", value)

	// Test JSON operations
	fmt.Println("\n2. Testing JSON operations...")
	type User struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	user := User{
		ID:    1,
		Name:  "John Doe",
		Email: "john@example.com",
	}

	err = client.SetJSON(ctx, "user:1", user, time.Hour)
	if err != nil {
		log.Fatalf("Failed to set JSON: %v", err)
	}
	fmt.Println("✓ Set JSON value successfully")

	var retrievedUser User
	err = client.GetJSON(ctx, "user:1", &retrievedUser)
	if err != nil {
		log.Fatalf("Failed to get JSON: %v", err)
	}
	fmt.Printf("✓ Got JSON value: %+v\n", retrievedUser)

	// Test typed helpers
	fmt.Println("\n3. Testing typed helpers...")
	err = client.SetInt(ctx, "visits", 42, time.Hour)
	if err != nil {
		log.Fatalf("Failed to set int: %v", err)
	}
	visits, err := client.GetInt(ctx, "visits")
	if err != nil {
		log.Fatalf("Failed to get int: %v", err)
	}
	fmt.Printf("✓ Got int value: %d\n", visits)

	err = client.SetBool(ctx, "enabled", true, time.Hour)
	if err != nil {
		log.Fatalf("Failed to set bool: %v", err)
	}
	enabled, err := client.GetBool(ctx, "enabled")
	if err != nil {
		log.Fatalf("Failed to get bool: %v", err)
	}
	fmt.Printf("✓ Got bool value: %t\n", enabled)

	// Test hash operations
	fmt.Println("\n4. Testing hash operations...")
	err = client.HSet(ctx, "user:1:profile", "name", "John Doe", "city", "Berlin")
	if err != nil {
		log.Fatalf("Failed to set hash: %v", err)
	}
	profile, err := client.HGetAll(ctx, "user:1:profile")
	if err != nil {
		log.Fatalf("Failed to get hash: %v", err)
	}
	fmt.Printf("✓ Got hash value: %v\n", profile)

	// Test counters
	fmt.Println("\n5. Testing counters...")
	count, err := client.Incr(ctx, "request_count")
	if err != nil {
		log.Fatalf("Failed to increment counter: %v", err)
	}
	fmt.Printf("✓ Counter after increment: %d\n", count)

	count, err = client.IncrBy(ctx, "request_count", 10)
	if err != nil {
		log.Fatalf("Failed to increment counter by 10: %v", err)
	}
	fmt.Printf("✓ Counter after IncrBy: %d\n", count)

	// Test pipeline
	fmt.Println("\n6. Testing pipeline...")
	pipe := client.Pipeline()
	pipe.Set(ctx, "pipe_key1", "value1", time.Hour)
	pipe.Set(ctx, "pipe_key2", "value2", time.Hour)
	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}
	fmt.Println("✓ Pipeline executed successfully")

	// =============================================================================
	// CONNECTION MONITORING
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("CONNECTION MONITORING")
	fmt.Println(strings.Repeat("=", 60))

	// Ping and pool statistics are what a health probe reads
	fmt.Println("\n1. Testing ping and pool statistics...")
	err = client.Ping(ctx)
	if err != nil {
		log.Fatalf("Ping failed: %v", err)
	}
	fmt.Println("✓ Ping succeeded")

	stats := client.Stats()
	fmt.Printf("✓ Pool stats: TotalConns=%d, IdleConns=%d, Hits=%d, Misses=%d\n",
		stats.TotalConns, stats.IdleConns, stats.Hits, stats.Misses)

	// =============================================================================
	// CLEANUP
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("CLEANUP")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Println("\nCleaning up test keys...")
	keysToDelete := []string{"default_test", "custom_test", "test_key", "user:1", "visits", "enabled", "user:1:profile", "request_count", "pipe_key1", "pipe_key2"}
	for _, key := range keysToDelete {
		err := client.Delete(ctx, key)
		if err != nil {
			log.Printf("Failed to delete key %s: %v", key, err)
		} else {
			fmt.Printf("✓ Deleted key: %s\n", key)
		}
	}

	// =============================================================================
	// SUMMARY
	// =============================================================================
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SUMMARY")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Println("\n✓ All Redis package tests completed successfully!")
	fmt.Println("\nConfiguration API Summary:")
	fmt.Println("- redis.NewRedisConfig() creates a config with defaults")
	fmt.Println("- Use With* methods to customize configuration")
	fmt.Println("- Configuration is validated automatically")
	fmt.Println("- Fluent API allows chaining methods")
	fmt.Println("- Default values are preserved when not specified")

	fmt.Println("\nClient API Summary:")
	fmt.Println("- Typed helpers: SetJSON/GetJSON, SetInt/GetInt, SetBool/GetBool")
	fmt.Println("- Hash, list, set and counter commands mirror the Redis names")
	fmt.Println("- Pipeline() batches commands in a single round trip")
	fmt.Println("- Ping() and Stats() expose what a health probe needs")
}

// demonstrateInvalidConfig shows that NewClient panics on a config that fails
// validation. The recover keeps the rest of the examples running.
func demonstrateInvalidConfig() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("✓ Invalid configuration properly panicked: %v\n", r)
		}
	}()

	invalidConfig := redis.NewRedisConfig().WithPort(99999) // Invalid port
	redis.NewClient(invalidConfig)                          // This should panic
}
