// Package stats records per-frame timings as CSV and renders them as a
// terminal plot.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/guptarohit/asciigraph"

	"backdrop/internal/scheduler"
)

// Record is one CSV row.
type Record struct {
	Frame     int     `csv:"frame"`
	Variant   string  `csv:"variant"`
	ElapsedMS float64 `csv:"elapsed_ms"`
	DeltaMS   float64 `csv:"delta_ms"`
	UpdateUS  int64   `csv:"update_us"`
	DrawUS    int64   `csv:"draw_us"`
}

// Recorder collects frame stats, optionally streaming them to a CSV writer.
// A nil Recorder ignores everything.
type Recorder struct {
	out           io.Writer
	headerWritten bool
	start         time.Time
	records       []Record
}

// NewRecorder returns a recorder writing CSV rows to out when out is non-nil.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Observe converts st to a Record, keeps it and streams it.
func (r *Recorder) Observe(st scheduler.FrameStat) error {
	if r == nil {
		return nil
	}
	if r.start.IsZero() {
		r.start = st.At.Add(-st.Delta)
	}
	rec := Record{
		Frame:     st.Frame,
		Variant:   st.Variant,
		ElapsedMS: ms(st.At.Sub(r.start)),
		DeltaMS:   ms(st.Delta),
		UpdateUS:  st.Update.Microseconds(),
		DrawUS:    st.Draw.Microseconds(),
	}
	r.records = append(r.records, rec)
	if r.out == nil {
		return nil
	}
	rows := []Record{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.out); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.out); err != nil {
		return fmt.Errorf("writing frame stats: %w", err)
	}
	return nil
}

// Records returns everything observed so far.
func (r *Recorder) Records() []Record {
	if r == nil {
		return nil
	}
	return r.records
}

// MeanFPS is the frame rate implied by the average delta.
func (r *Recorder) MeanFPS() float64 {
	if r == nil || len(r.records) == 0 {
		return 0
	}
	total := 0.0
	for _, rec := range r.records {
		total += rec.DeltaMS
	}
	if total == 0 {
		return 0
	}
	return 1000 * float64(len(r.records)) / total
}

// Plot renders the per-frame draw time in microseconds.
func (r *Recorder) Plot(width, height int) string {
	if r == nil || len(r.records) == 0 {
		return ""
	}
	data := make([]float64, len(r.records))
	for i, rec := range r.records {
		data[i] = float64(rec.DrawUS)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s draw time (us), %.1f fps", r.records[0].Variant, r.MeanFPS())),
	)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
