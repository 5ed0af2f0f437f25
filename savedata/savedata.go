package savedata

import (
	"io"
	"os"
	"time"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/evaluation"

	"github.com/hyp3rd/ewrap"
)

type ReportPoint struct {
	Timestamp     string  `json:"timestamp"`
	Bps           float64 `json:"bits_per_second"`
	Mbps          float64 `json:"mbps"`
	ValidFiles    int     `json:"valid_files"`
	RejectedFiles int     `json:"rejected_files"`
}

type ReportSeries struct {
	Direction string        `json:"direction"`
	Points    []ReportPoint `json:"points"`
}

// Report is the JSON form of all series of one run.
type Report struct {
	WorkingDir  string         `json:"working_dir"`
	GeneratedAt time.Time      `json:"generated_at"`
	Series      []ReportSeries `json:"series"`
}

func NewReport(workdir string, now time.Time, series []evaluation.Series) Report {
	r := Report{WorkingDir: workdir, GeneratedAt: now.UTC(), Series: make([]ReportSeries, 0, len(series))}
	for _, s := range series {
		rs := ReportSeries{Direction: s.Direction.String(), Points: make([]ReportPoint, 0, len(s.Points))}
		for _, p := range s.Points {
			rs.Points = append(rs.Points, ReportPoint{
				Timestamp:     p.Label,
				Bps:           p.Bps,
				Mbps:          p.Mbps,
				ValidFiles:    p.Valid,
				RejectedFiles: p.Rejected,
			})
		}
		r.Series = append(r.Series, rs)
	}
	return r
}

func SaveReport(path string, r Report) error {
	rd, err := common.MarshalResult(r)
	if err != nil {
		return ewrap.Wrap(err, "marshal report")
	}
	f, err := os.Create(path)
	if err != nil {
		return ewrap.Wrapf(err, "create report %s", path)
	}
	defer f.Close()
	if _, err := io.Copy(f, rd); err != nil {
		return ewrap.Wrapf(err, "write report %s", path)
	}
	return f.Close()
}

func LoadReport(path string) (Report, error) {
	var r Report
	f, err := os.Open(path)
	if err != nil {
		return r, ewrap.Wrapf(err, "open report %s", path)
	}
	defer f.Close()
	err = common.UnMarshalResult(f, &r)
	return r, err
}
