package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent requests. Using a centralized singleflight.Group ensures
// that only one job runs for a given key while other callers wait for
// the result.

import "golang.org/x/sync/singleflight"

// FixtureGroup deduplicates match-simulation requests keyed by fixture
// id, so two concurrent play requests for the same fixture run one
// simulation and share its outcome.
var FixtureGroup singleflight.Group
