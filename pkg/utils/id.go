package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateRunID generates a run ID with a timestamp prefix, e.g.
// "run-20240301-154212-1b9d6bcd".
func GenerateRunID() string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("run-%s-%s", timestamp, uuid.NewString()[:8])
}
