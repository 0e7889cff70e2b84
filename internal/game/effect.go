package game

import (
	"sort"
	"time"
)

// ActiveEffect is a timed buff. Expires is on the simulation clock.
type ActiveEffect struct {
	Kind     Kind
	Expires  time.Duration
	Duration time.Duration
}

// Effects holds at most one ActiveEffect per kind.
type Effects map[Kind]ActiveEffect

// Add registers a buff, replacing any running buff of the same kind.
// Durations do not stack: the timer restarts from now.
func (e Effects) Add(kind Kind, now, duration time.Duration) {
	e[kind] = ActiveEffect{
		Kind:     kind,
		Expires:  now + duration,
		Duration: duration,
	}
}

// Has reports whether a buff of the kind is running.
func (e Effects) Has(kind Kind) bool {
	_, ok := e[kind]
	return ok
}

// Expire removes every buff with Expires <= now and returns the removed
// kinds in kind order.
func (e Effects) Expire(now time.Duration) []Kind {
	var expired []Kind
	for kind, effect := range e {
		if now >= effect.Expires {
			expired = append(expired, kind)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	for _, kind := range expired {
		delete(e, kind)
	}
	return expired
}

// EffectStatus is the HUD view of a running buff.
type EffectStatus struct {
	Kind      Kind
	Remaining time.Duration
	Fraction  float64 // Remaining share of the original duration, 0..1
}

// Status lists running buffs in kind order.
func (e Effects) Status(now time.Duration) []EffectStatus {
	out := make([]EffectStatus, 0, len(e))
	for _, effect := range e {
		remaining := effect.Expires - now
		if remaining < 0 {
			remaining = 0
		}
		fraction := 0.0
		if effect.Duration > 0 {
			fraction = float64(remaining) / float64(effect.Duration)
		}
		out = append(out, EffectStatus{Kind: effect.Kind, Remaining: remaining, Fraction: fraction})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// expireEffects is the per-tick effect timer. The shot delay is derived
// from the running buffs every tick, so rapid fire needs no explicit reset.
func (s *Session) expireEffects() {
	for _, kind := range s.effects.Expire(s.clock) {
		s.logf("effect expired", "kind", kind)
	}
}
