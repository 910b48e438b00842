package renderer

import (
	"fmt"
	"strings"
	"time"
)

// DefaultBarWidth is the number of cells in the progress bar
const DefaultBarWidth = 50

// Progress tracks completed work units (scanlines) and estimates time remaining
type Progress struct {
	total     int
	completed int
	barWidth  int
	start     time.Time
}

// NewProgress starts tracking total units of work at the given time
func NewProgress(total, barWidth int, start time.Time) *Progress {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}
	return &Progress{total: total, barWidth: barWidth, start: start}
}

// Advance marks n more units as completed
func (p *Progress) Advance(n int) {
	p.completed = min(p.completed+n, p.total)
}

// Completed returns the number of completed units
func (p *Progress) Completed() int {
	return p.completed
}

// Done reports whether all units are completed
func (p *Progress) Done() bool {
	return p.completed >= p.total
}

// Percent returns the completed percentage in [0, 100]
func (p *Progress) Percent() int {
	if p.total <= 0 {
		return 100
	}
	return p.completed * 100 / p.total
}

// ETA extrapolates the remaining time from the average time per completed unit
func (p *Progress) ETA(now time.Time) time.Duration {
	if p.completed == 0 || p.completed >= p.total {
		return 0
	}
	elapsed := now.Sub(p.start)
	perUnit := elapsed / time.Duration(p.completed)
	return perUnit * time.Duration(p.total-p.completed)
}

// Format renders the progress line, e.g.
// "Progress: [=====>    ]  50 % 5/10 ETA: 00h 00m 03s"
func (p *Progress) Format(now time.Time) string {
	var bar strings.Builder
	pos := p.barWidth
	if p.total > 0 {
		pos = p.completed * p.barWidth / p.total
	}
	for i := 0; i < p.barWidth; i++ {
		switch {
		case i < pos:
			bar.WriteByte('=')
		case i == pos:
			bar.WriteByte('>')
		default:
			bar.WriteByte(' ')
		}
	}

	eta := p.ETA(now)
	hours := int(eta / time.Hour)
	minutes := int((eta % time.Hour) / time.Minute)
	seconds := int((eta % time.Minute) / time.Second)

	return fmt.Sprintf("Progress: [%s] %3d %% %d/%d ETA: %02dh %02dm %02ds",
		bar.String(), p.Percent(), p.completed, p.total, hours, minutes, seconds)
}
