package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/saves"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redisURL, nil)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer func() { _ = client.Close() }()

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for unreadable save records...")

	iter := client.Scan(ctx, 0, saves.KeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		// Decode rejects bad JSON and records a load would refuse
		if _, err := saves.Decode(data); err != nil {
			if errors.IsDataLoss(err) {
				fmt.Printf("✗ %s (slot %s): %s\n", key, strings.TrimPrefix(key, saves.KeyPrefix), errors.GetMessage(err))
				corruptedKeys = append(corruptedKeys, key)
				continue
			}
			fmt.Printf("Error decoding %s: %v\n", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted saves\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted saves found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Loading a corrupted slot already falls back to a new game, so deleting
	// only loses the broken record
	fmt.Print("\nDo you want to DELETE these saves? (yes/no): ")
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
