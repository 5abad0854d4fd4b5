package driven

import "time"

// Clock is an injectable time source. The candidate cache uses it so
// freshness decisions are deterministic in tests.
type Clock interface {
	Now() time.Time
}
