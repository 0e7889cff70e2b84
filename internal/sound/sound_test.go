package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/pixelshooter/internal/game"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < -1 || v > 1 {
					t.Fatalf("Sample %d out of range: %f", total+i, v)
				}
				peak = max(peak, v, -v)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > 10*int(sampleRate) {
			t.Fatal("Stream did not end")
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := newOscillator(440, 880, 100*time.Millisecond, wave, rate)
		n, _ := drain(t, osc)
		if want := rate.N(100 * time.Millisecond); n != want {
			t.Errorf("wave %d: expected %d samples, got %d", wave, want, n)
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got %v", osc.Err())
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(0, 0, time.Second, WaveSquare, rate)
	env := newEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Expected full level mid-note, got %f", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("Expected faded last sample, got %f", buf[999][0])
	}
}

func TestEveryCueSynthesizes(t *testing.T) {
	for cue := game.CueShoot; cue <= game.CueGameOver; cue++ {
		t.Run(cue.String(), func(t *testing.T) {
			s := Synthesize(cue, sampleRate, 1)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			n, peak := drain(t, s)
			if want := sampleRate.N(Length(cue)); n < want-len(recipes[cue].notes) || n > want {
				t.Errorf("Expected about %d samples, got %d", want, n)
			}
			if peak == 0 {
				t.Error("Expected an audible cue")
			}
		})
	}
}

func TestSynthesizeMuted(t *testing.T) {
	_, peak := drain(t, Synthesize(game.CueShoot, sampleRate, 0))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent()
	p.Play(game.CueShoot, game.CueGameOver)

	if p.Enabled() {
		t.Error("Silent player should start disabled")
	}
	if !p.Toggle() || !p.Enabled() {
		t.Error("Expected toggle to enable")
	}
	p.Play(game.CueHit)
	p.Close()
}
