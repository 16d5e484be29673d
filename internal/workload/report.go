package workload

import (
	"time"

	json "github.com/goccy/go-json"
)

// Report summarizes a workload run.
type Report struct {
	Name           string        `json:"name"`
	ReleaseOrder   string        `json:"release_order"`
	Rounds         int           `json:"rounds"`
	Acquires       int           `json:"acquires"`
	Releases       int           `json:"releases"`
	Constructions  int           `json:"constructions"`
	Reuses         int           `json:"reuses"`
	PeakCheckedOut int           `json:"peak_checked_out"`
	TornDown       int           `json:"torn_down"`
	BytesWritten   int64         `json:"bytes_written"`
	Duration       time.Duration `json:"duration_ns"`
	Cancelled      bool          `json:"cancelled"`
}

// ReuseRatio returns the fraction of acquires served by a reused buffer.
func (r *Report) ReuseRatio() float64 {
	if r.Acquires == 0 {
		return 0
	}
	return float64(r.Reuses) / float64(r.Acquires)
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
