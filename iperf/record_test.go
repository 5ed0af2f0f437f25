package iperf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DMaendlen/netmeasure/common"

	"github.com/longbridgeapp/assert"
)

const validRecord = `{
	"start": {"test_start": {"protocol": "TCP", "num_streams": 1}},
	"end": {
		"sum_sent": {"bits_per_second": 2100000.5},
		"sum_received": {"bytes": 2500000, "bits_per_second": 2000000}
	}
}`

func TestParseRecord(t *testing.T) {
	o := ParseRecord([]byte(validRecord))
	assert.True(t, o.OK())
	assert.Equal(t, 2000000.0, o.Bps)
	assert.Equal(t, 0, len(o.Raw))
}

func TestParseRecordFailures(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{not json`, common.ErrRecordParse},
		{"empty", ``, common.ErrRecordParse},
		{"iperf error text", "iperf3: error - unable to connect to server: Connection refused\n", common.ErrRecordParse},
		{"no end", `{"start": {}}`, common.ErrMissingField},
		{"no sum_received", `{"end": {"sum_sent": {"bits_per_second": 1}}}`, common.ErrMissingField},
		{"null value", `{"end": {"sum_received": {"bits_per_second": null}}}`, common.ErrMissingField},
		{"string value", `{"end": {"sum_received": {"bits_per_second": "fast"}}}`, common.ErrMissingField},
		{"negative value", `{"end": {"sum_received": {"bits_per_second": -1}}}`, common.ErrMissingField},
		{"end is array", `{"end": [1, 2]}`, common.ErrMissingField},
		{"top level array", `[{"end": {}}]`, common.ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ParseRecord([]byte(tt.data))
			assert.False(t, o.OK())
			if !errors.Is(o.Err, tt.want) {
				t.Fatalf("err = %v, want %v", o.Err, tt.want)
			}
			assert.Equal(t, tt.data, string(o.Raw))
			assert.Equal(t, 0.0, o.Bps)
		})
	}
}

func TestParseRecordZeroIsValid(t *testing.T) {
	o := ParseRecord([]byte(`{"end": {"sum_received": {"bits_per_second": 0}}}`))
	assert.True(t, o.OK())
	assert.Equal(t, 0.0, o.Bps)
}

func TestReadRecord(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "srv1_download")
	assert.Nil(t, os.WriteFile(good, []byte(validRecord), 0644))

	o := ReadRecord(good)
	assert.True(t, o.OK())
	assert.Equal(t, good, o.Path)
	assert.Equal(t, 2000000.0, o.Bps)

	missing := filepath.Join(dir, "srv2_download")
	o = ReadRecord(missing)
	assert.True(t, errors.Is(o.Err, common.ErrRecordRead))
	assert.Equal(t, missing, o.Path)
}
