package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// checkBuild returns why a stored build can no longer be restored, or ""
func checkBuild(data string, registry *jobs.Registry) string {
	var build skillbook.Build
	if err := json.Unmarshal([]byte(data), &build); err != nil {
		return "invalid JSON"
	}
	if build.ID == "" {
		return "missing id"
	}
	if _, err := registry.Get(build.ArchetypeID); err != nil {
		return fmt.Sprintf("unknown archetype %d", build.ArchetypeID)
	}
	for id, level := range build.Snapshot.Levels {
		if level < 0 {
			return fmt.Sprintf("negative level %d for skill %d", level, id)
		}
	}
	return ""
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for builds that cannot be restored...")

	registry := jobs.Default()
	iter := client.Scan(ctx, 0, "build:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := checkBuild(data, registry); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted builds\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		return
	}

	fmt.Print("\nDo you want to DELETE these builds? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
