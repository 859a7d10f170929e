package redis

import "fmt"

// Key prefix for all playerlist data
const keyPrefix = "playerlist"

// fileKey returns the Redis key holding the playerlist stored under path
func fileKey(path string) string {
	return fmt.Sprintf("%s:file:%s", keyPrefix, path)
}
