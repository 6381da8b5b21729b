package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/hsmgraph/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// renderSpinner animates a status line while a runner renders. It is
// installed as the runner's pipeline hooks, so the line names the format
// being rendered; every hook is forwarded to the wrapped hooks.
type renderSpinner struct {
	observability.PipelineHooks

	out     io.Writer
	formats []string

	mu      sync.Mutex
	current string // format in flight, "" before the first render
	drawn   int    // width of the last drawn line
	started bool

	once    sync.Once
	quit    chan struct{}
	stopped chan struct{}
}

func newRenderSpinner(next observability.PipelineHooks, formats []string) *renderSpinner {
	if next == nil {
		next = observability.NoopPipelineHooks{}
	}
	return &renderSpinner{
		PipelineHooks: next,
		out:           statusOut,
		formats:       formats,
		quit:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}
}

// OnRenderStart records format as the one in flight.
func (s *renderSpinner) OnRenderStart(ctx context.Context, format string) {
	s.mu.Lock()
	s.current = format
	s.mu.Unlock()
	s.PipelineHooks.OnRenderStart(ctx, format)
}

// message is the text next to the spinner frame.
func (s *renderSpinner) message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == "" {
		return "Rendering " + strings.Join(s.formats, ", ")
	}
	return fmt.Sprintf("Rendering %s [%d/%d]", s.current, slices.Index(s.formats, s.current)+1, len(s.formats))
}

// start animates until stop is called or ctx is done.
func (s *renderSpinner) start(ctx context.Context) {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				s.clear()
				return
			case <-s.quit:
				s.clear()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// stop ends the animation and clears the line. It may be called more than
// once, and before start.
func (s *renderSpinner) stop() {
	s.once.Do(func() { close(s.quit) })
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}
}

func (s *renderSpinner) draw(frame string) {
	msg := s.message()
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), styleDim.Render(msg))
	s.drawn = len(msg) + 2
}

func (s *renderSpinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn == 0 {
		return
	}
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.drawn))
	s.drawn = 0
}
