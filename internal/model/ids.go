package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID builds "<prefix>_<unix-millis>_<random>".
func NewID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), uuid.NewString())
}
