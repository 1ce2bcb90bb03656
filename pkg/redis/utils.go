package redis

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// generateLockValue generates a unique value identifying the lock holder
func generateLockValue() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
