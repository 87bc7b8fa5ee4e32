package maze

import (
	"fmt"
	"strconv"
	"time"
)

// Seed range offered to players picking an endless run.
const (
	MinSeed uint32 = 1
	MaxSeed uint32 = 65535
)

// RandomSeed derives a player-facing seed in [MinSeed, MaxSeed] from a clock reading.
func RandomSeed(now time.Time) uint32 {
	return uint32(now.UnixMilli()&0xffff) + 1
}

// StepSeed moves seed by delta, wrapping around inside [MinSeed, MaxSeed].
// Seeds outside the range are folded into it first.
func StepSeed(seed uint32, delta int) uint32 {
	span := int64(MaxSeed - MinSeed + 1)
	pos := (int64(seed) - int64(MinSeed) + int64(delta)) % span
	if pos < 0 {
		pos += span
	}
	return uint32(pos) + MinSeed
}

// FormatSeed renders a seed zero-padded to five digits, as shown in the seed picker.
func FormatSeed(seed uint32) string {
	return fmt.Sprintf("%05d", seed)
}

// ParseSeed parses a decimal seed. Any uint32 is accepted; the player-facing
// range is only enforced by StepSeed and RandomSeed.
func ParseSeed(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return uint32(v), nil
}
