package dataset

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressReporter receives batch progress events.
type ProgressReporter interface {
	Start(total int)
	Increment()
	Finish()
}

// BatchProgress renders a progress bar on stderr while a dataset run is
// in flight.
type BatchProgress struct {
	bar *progressbar.ProgressBar
}

// NewBatchProgress returns a reporter, or nil when disabled so callers
// can pass it straight to NewRunner.
func NewBatchProgress(enabled bool) ProgressReporter {
	if !enabled {
		return nil
	}
	return &BatchProgress{}
}

func (p *BatchProgress) Start(total int) {
	if total <= 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("summarizing"),
		progressbar.OptionSetWidth(32),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (p *BatchProgress) Increment() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

func (p *BatchProgress) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

// DefaultProgressEnabled reports whether stderr is a terminal.
func DefaultProgressEnabled() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
