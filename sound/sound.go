// Package sound plays short feedback clicks through the speaker. Tones are
// generated rather than shipped as assets; if the speaker cannot be
// initialized, sound is disabled and everything else carries on.
package sound

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Player struct {
	mu      sync.Mutex
	enabled bool
	buffers map[string]*beep.Buffer
}

// NewPlayer initializes the speaker and pre-renders the effect tones.
func NewPlayer() *Player {
	p := &Player{buffers: make(map[string]*beep.Buffer)}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: failed to initialize speaker: %v\n", err)
		return p
	}
	p.enabled = true

	p.buffers["advance"] = renderTone(880, 0.06)
	p.buffers["added"] = renderTone(660, 0.10)
	p.buffers["removed"] = renderTone(440, 0.10)
	p.buffers["equip"] = renderTone(990, 0.08)

	return p
}

// Play queues the named effect. Unknown names and disabled audio are no-ops.
func (p *Player) Play(effect string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	b, ok := p.buffers[effect]
	if !ok {
		return
	}

	speaker.Play(b.Streamer(0, b.Len()))
}

// renderTone bakes a sine tone with a short attack/release envelope into a
// reusable buffer.
func renderTone(freq float64, seconds float64) *beep.Buffer {
	samples := int(float64(sampleRate) * seconds)
	attack := samples / 10
	release := samples / 4

	i := 0
	streamer := beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		n := 0
		for n < len(out) && i < samples {
			v := 0.4 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
			if i < attack {
				v *= float64(i) / float64(attack)
			}
			if rem := samples - i; rem < release {
				v *= float64(rem) / float64(release)
			}
			out[n][0] = v
			out[n][1] = v
			n++
			i++
		}
		if n == 0 {
			return 0, false
		}
		return n, true
	})

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	return buffer
}
