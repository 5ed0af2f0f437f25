package spdb

import (
	"time"

	"github.com/DMaendlen/netmeasure/evaluation"
)

// HourlyDoc is one (direction, batch) average as stored in MongoDB.
type HourlyDoc struct {
	Direction     string    `bson:"direction" json:"direction"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
	Bps           float64   `bson:"bits_per_second" json:"bits_per_second"`
	Mbps          float64   `bson:"mbps" json:"mbps"`
	ValidFiles    int       `bson:"valid_files" json:"valid_files"`
	RejectedFiles int       `bson:"rejected_files" json:"rejected_files"`
	WorkingDir    string    `bson:"working_dir" json:"working_dir"`
	LastUpdated   time.Time `bson:"lastupdated" json:"lastupdated"`
}

func Documents(workdir string, now time.Time, series []evaluation.Series) []HourlyDoc {
	var docs []HourlyDoc
	for _, s := range series {
		for _, p := range s.Points {
			docs = append(docs, HourlyDoc{
				Direction:     s.Direction.String(),
				Timestamp:     p.Timestamp,
				Bps:           p.Bps,
				Mbps:          p.Mbps,
				ValidFiles:    p.Valid,
				RejectedFiles: p.Rejected,
				WorkingDir:    workdir,
				LastUpdated:   now.UTC(),
			})
		}
	}
	return docs
}
