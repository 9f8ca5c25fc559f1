package loader

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BatchID derives an audit tag from the load wall-clock time, with a short
// uuid suffix so two runs in the same second stay distinguishable.
func BatchID(now time.Time) string {
	return fmt.Sprintf("batch_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}
