// Package iperf decodes the received throughput from iperf3 JSON result files.
package iperf

import (
	"os"

	"github.com/DMaendlen/netmeasure/common"

	json "github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
)

// FieldPath is the location of the throughput reading inside an iperf3 result.
var FieldPath = []string{"end", "sum_received", "bits_per_second"}

// Outcome is the decode result of one measurement file: Bps when Err is nil,
// otherwise Err wraps one of common.ErrRecordRead, ErrRecordParse or ErrMissingField.
type Outcome struct {
	Path string
	Bps  float64
	Err  error
	// Raw holds the file content of failed records for diagnostics.
	Raw []byte
}

func (o Outcome) OK() bool { return o.Err == nil }

// ReadRecord reads the whole file and decodes it. The file is closed before decoding starts.
func ReadRecord(path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Path: path, Err: ewrap.Wrapf(common.ErrRecordRead, "%s: %v", path, err)}
	}
	o := ParseRecord(data)
	o.Path = path
	return o
}

// ParseRecord extracts end.sum_received.bits_per_second from one JSON document.
func ParseRecord(data []byte) Outcome {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Outcome{Err: ewrap.Wrap(common.ErrRecordParse, err.Error()), Raw: data}
	}
	v, ok := lookup(doc, FieldPath)
	if !ok {
		return Outcome{Err: ewrap.Wrap(common.ErrMissingField, "field not present"), Raw: data}
	}
	bps, ok := v.(float64)
	if !ok || bps < 0 {
		return Outcome{Err: ewrap.Wrapf(common.ErrMissingField, "bits_per_second is %v", v), Raw: data}
	}
	return Outcome{Bps: bps}
}

func lookup(doc interface{}, path []string) (interface{}, bool) {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}
