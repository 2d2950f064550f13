package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/ui/output"
	"go.trai.ch/todostack/internal/ui/style"
)

// Summarize writes one line per recorded step with its outcome and duration.
func (r *Runner) Summarize(w io.Writer) error {
	out := output.New(w)
	for _, rep := range r.telemetry.Reports() {
		line, color := summaryLine(rep)
		styled := out.String(line).Foreground(termenv.RGBColor(string(color)))
		if _, err := out.WriteString(styled.String() + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func summaryLine(rep domain.StepReport) (string, lipgloss.Color) {
	d := rep.Duration.Round(time.Millisecond).String()
	switch rep.State {
	case domain.StepFailed:
		return style.Cross + " " + rep.Name + " failed after " + d, style.Red
	case domain.StepCached:
		return style.Arrow + " " + rep.Name + " already satisfied", style.Slate
	case domain.StepRunning:
		return style.Warning + " " + rep.Name + " interrupted after " + d, style.Yellow
	default:
		return style.Check + " " + rep.Name + " " + d, style.Green
	}
}
