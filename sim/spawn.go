package sim

import (
	"math/rand"

	"minipolis/config"
)

// spawnTimer gates spawn attempts for a manager. It counts down in scaled
// simulation time and resets to a randomized interval after each attempt:
// shorter on success so an under-capacity network burst-fills, longer on
// failure so managers do not busy-loop probing a network with no valid
// spawn point.
type spawnTimer struct {
	cfg       config.SpawnTimerConfig
	remaining float64
}

func newSpawnTimer(cfg config.SpawnTimerConfig, rng *rand.Rand) spawnTimer {
	t := spawnTimer{cfg: cfg}
	t.remaining = randRange(rng, cfg.SuccessMin, cfg.SuccessMax)
	return t
}

// tick advances the countdown and reports whether an attempt is due.
func (t *spawnTimer) tick(dt float64) bool {
	t.remaining -= dt
	return t.remaining <= 0
}

// reset re-arms the countdown after an attempt.
func (t *spawnTimer) reset(rng *rand.Rand, success bool) {
	if success {
		t.remaining = randRange(rng, t.cfg.SuccessMin, t.cfg.SuccessMax)
	} else {
		t.remaining = randRange(rng, t.cfg.FailureMin, t.cfg.FailureMax)
	}
}

// randRange returns a uniform value in [min, max).
func randRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
