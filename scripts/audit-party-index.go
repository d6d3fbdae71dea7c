package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal view of the stored record, enough to audit without importing the
// full entity.
type partyRecord struct {
	SchemaVersion int `json:"schema_version"`
	Party         *struct {
		GuildID  string                     `json:"guild_id"`
		LeaderID string                     `json:"leader_id"`
		Members  map[string]json.RawMessage `json:"members"`
	} `json:"party"`
}

const currentSchemaVersion = 1

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
	fmt.Println("Auditing party records and their member index...")

	iter := client.Scan(ctx, 0, "party:*", 0).Iterator()

	var undecodable []string
	repairs := make(map[string]string) // index key -> leader ID it should hold
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		// Index entries share the party: prefix; only audit primary records
		if strings.HasPrefix(key, "party:member:") {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec partyRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			undecodable = append(undecodable, key)
			continue
		}
		if rec.SchemaVersion != currentSchemaVersion || rec.Party == nil {
			fmt.Printf("✗ Unknown schema version %d in %s\n", rec.SchemaVersion, key)
			undecodable = append(undecodable, key)
			continue
		}

		for userID := range rec.Party.Members {
			idxKey := "party:member:" + rec.Party.GuildID + ":" + userID
			leaderID, err := client.Get(ctx, idxKey).Result()
			if err == redis.Nil {
				fmt.Printf("✗ Missing index entry %s\n", idxKey)
				repairs[idxKey] = rec.Party.LeaderID
				continue
			}
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", idxKey, err)
				continue
			}
			if leaderID != rec.Party.LeaderID {
				fmt.Printf("✗ Stale index entry %s: points at %s, record led by %s\n",
					idxKey, leaderID, rec.Party.LeaderID)
				repairs[idxKey] = rec.Party.LeaderID
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d party records: %d undecodable, %d index entries need repair\n",
		checkedCount, len(undecodable), len(repairs))

	for _, key := range undecodable {
		fmt.Printf("  undecodable: %s (GetByMember falls back to a scan; fix or delete by hand)\n", key)
	}

	if len(repairs) == 0 {
		fmt.Println("Member index is consistent!")
		return
	}

	fmt.Print("\nDo you want to REPAIR these index entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for idxKey, leaderID := range repairs {
		if err := client.Set(ctx, idxKey, leaderID, 0).Err(); err != nil {
			fmt.Printf("Failed to repair %s: %v\n", idxKey, err)
		} else {
			fmt.Printf("Repaired %s -> %s\n", idxKey, leaderID)
		}
	}
	fmt.Println("\nRepair complete!")
}
