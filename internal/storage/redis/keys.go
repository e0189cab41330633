package redis

import (
	"fmt"

	"github.com/mcoot/gamelobby-go/internal/model"
)

// Key prefix for all archive data
const keyPrefix = "gamelobby"

// recordKey returns the Redis key for an archived game record
func recordKey(code model.GameCode) string {
	return fmt.Sprintf("%s:archive:%s", keyPrefix, code)
}

// recordsByStartKey returns the Redis key for the sorted set indexing
// archived games by start time
func recordsByStartKey() string {
	return fmt.Sprintf("%s:idx:archive_by_start", keyPrefix)
}
