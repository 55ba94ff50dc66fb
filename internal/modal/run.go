package modal

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// FrameSource yields input frames. ok is false once input is exhausted.
type FrameSource interface {
	Next() (f Frame, ok bool)
}

// ScriptedFrames replays a fixed list of frames.
type ScriptedFrames struct {
	Frames []Frame
	pos    int
}

func (s *ScriptedFrames) Next() (Frame, bool) {
	if s.pos >= len(s.Frames) {
		return Frame{}, false
	}
	f := s.Frames[s.pos]
	s.pos++
	return f, true
}

// Pacer bounds how fast frames are stepped.
type Pacer interface {
	Wait()
}

type NoPacer struct{}

func (NoPacer) Wait() {}

// RatePacer allows one frame per tick of a fixed rate.
type RatePacer struct {
	limiter *rate.Limiter
}

func NewRatePacer(tps int) *RatePacer {
	if tps <= 0 {
		tps = 60
	}
	return &RatePacer{limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(tps)), 1)}
}

func (p *RatePacer) Wait() {
	// Wait only fails for a cancelled context or a request above the
	// burst; neither can happen with Background and n=1.
	_ = p.limiter.Wait(context.Background())
}

// RunToCompletion steps m with frames from src until it reaches a terminal
// status. Each hook runs after every step, typically to redraw. If src runs
// dry first the dialog is abandoned, yielding its no-value outcome.
func RunToCompletion(m Modal, src FrameSource, pacer Pacer, hooks ...func(Modal)) Result {
	if pacer == nil {
		pacer = NoPacer{}
	}
	for {
		f, ok := src.Next()
		if !ok {
			m.Abandon()
			return m.Result()
		}
		st := m.Step(f)
		for _, h := range hooks {
			h(m)
		}
		if st.Terminal() {
			return m.Result()
		}
		pacer.Wait()
	}
}
