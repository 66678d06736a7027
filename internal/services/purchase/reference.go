package purchase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReference allocates an internal transaction reference: a time-based
// component plus a random component, uppercased. Uniqueness is ultimately
// enforced by the transaction log's unique index; callers retry allocation
// on a collision.
func NewReference() string {
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), randomSuffix(9))
}

func randomSuffix(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
