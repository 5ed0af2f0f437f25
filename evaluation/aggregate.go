package evaluation

import (
	"time"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/iperf"
	"github.com/DMaendlen/netmeasure/logger"
	"github.com/DMaendlen/netmeasure/scan"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Options struct {
	// StrictTimestamps aborts on the first batch directory whose name is not a timestamp.
	// Otherwise such batches are skipped with a warning.
	StrictTimestamps bool
}

//mean received throughput of one batch, bits per second
type Average struct {
	Bps      float64
	Valid    int
	Rejected int
}

// HourlyAverage maps a batch timestamp to its average. Batches without a valid file have no entry.
type HourlyAverage map[time.Time]Average

// Result holds one HourlyAverage per direction.
type Result [common.NumDirections]HourlyAverage

// Tally is the running state of folding one batch's record outcomes.
type Tally struct {
	Sum      float64
	Valid    int
	Rejected int
}

// Add accounts one outcome. Failed records only count as rejected.
func (t Tally) Add(o iperf.Outcome) Tally {
	if !o.OK() {
		t.Rejected++
		return t
	}
	t.Sum += o.Bps
	t.Valid++
	return t
}

// Mean is Sum/Valid; ok is false when nothing valid was folded.
func (t Tally) Mean() (mean float64, ok bool) {
	if t.Valid == 0 {
		return 0, false
	}
	return t.Sum / float64(t.Valid), true
}

func Fold(outcomes []iperf.Outcome) Tally {
	var t Tally
	for _, o := range outcomes {
		t = t.Add(o)
	}
	return t
}

// ReadBatch decodes every file of one batch in order and logs the failures.
func ReadBatch(files []string) []iperf.Outcome {
	outcomes := make([]iperf.Outcome, 0, len(files))
	for _, f := range files {
		o := iperf.ReadRecord(f)
		if !o.OK() {
			logger.Warnf("%v, got\n%s", o.Err, o.Raw)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// Aggregate reduces one direction's batch directories to their hourly averages.
func Aggregate(files map[string][]string, opts Options) (HourlyAverage, error) {
	dirs := maps.Keys(files)
	slices.Sort(dirs)

	hourly := make(HourlyAverage, len(dirs))
	for _, dir := range dirs {
		ts, err := common.ParseTimestamp(common.BatchName(dir))
		if err != nil {
			if opts.StrictTimestamps {
				return nil, err
			}
			logger.Warnf("skipping batch: %v", err)
			continue
		}
		tally := Fold(ReadBatch(files[dir]))
		mean, ok := tally.Mean()
		if !ok {
			logger.Debugf("batch %s has no valid records (%d rejected)", dir, tally.Rejected)
			continue
		}
		hourly[ts] = Average{Bps: mean, Valid: tally.Valid, Rejected: tally.Rejected}
	}
	return hourly, nil
}

// AggregateAll runs Aggregate for every direction of the classified file sets.
func AggregateAll(sets scan.FileSets, opts Options) (Result, error) {
	var res Result
	for _, d := range common.Directions {
		hourly, err := Aggregate(sets[d], opts)
		if err != nil {
			return Result{}, err
		}
		res[d] = hourly
	}
	return res, nil
}
