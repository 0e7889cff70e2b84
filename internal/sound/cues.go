package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/pixelshooter/internal/game"
)

const ms = time.Millisecond

// recipe is a cue's notes played in sequence, and its loudness.
type recipe struct {
	notes  []note
	volume float64
}

var recipes = map[game.Cue]recipe{
	game.CueShoot:        {[]note{{880, 440, 60 * ms, WaveSquare}}, 0.15},
	game.CueHit:          {[]note{{220, 180, 50 * ms, WaveSquare}}, 0.2},
	game.CueEnemyExplode: {[]note{{0, 0, 250 * ms, WaveNoise}}, 0.35},
	game.CuePlayerHit:    {[]note{{160, 60, 200 * ms, WaveSaw}}, 0.4},
	game.CueLifeLost:     {[]note{{440, 330, 150 * ms, WaveSquare}, {330, 220, 250 * ms, WaveSquare}}, 0.35},
	game.CueHealth:       {[]note{{523, 523, 80 * ms, WaveSine}, {784, 784, 120 * ms, WaveSine}}, 0.35},
	game.CuePowerup:      {[]note{{440, 1320, 200 * ms, WaveSquare}}, 0.25},
	game.CueShield:       {[]note{{300, 600, 300 * ms, WaveSine}}, 0.35},
	game.CueLevelUp:      {[]note{{523, 523, 100 * ms, WaveSquare}, {659, 659, 100 * ms, WaveSquare}, {784, 784, 200 * ms, WaveSquare}}, 0.3},
	game.CueStart:        {[]note{{392, 392, 100 * ms, WaveSquare}, {523, 523, 200 * ms, WaveSquare}}, 0.3},
	game.CuePause:        {[]note{{660, 440, 120 * ms, WaveSine}}, 0.25},
	game.CueResume:       {[]note{{440, 660, 120 * ms, WaveSine}}, 0.25},
	game.CueGameOver:     {[]note{{392, 392, 200 * ms, WaveSaw}, {311, 311, 200 * ms, WaveSaw}, {262, 196, 500 * ms, WaveSaw}}, 0.35},
}

// Synthesize builds the streamer for a cue at the given master volume. It
// returns nil for cues without a sound.
func Synthesize(cue game.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	r, ok := recipes[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(r.notes))
	for _, n := range r.notes {
		parts = append(parts, n.shape(rate))
	}
	return withVolume(beep.Seq(parts...), r.volume*master)
}

// Length is the total play time of a cue.
func Length(cue game.Cue) time.Duration {
	var d time.Duration
	for _, n := range recipes[cue].notes {
		d += n.length
	}
	return d
}
