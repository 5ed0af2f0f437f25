package common

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/longbridgeapp/assert"
)

func TestTimestampRoundTrip(t *testing.T) {
	for _, name := range []string{"2018-05-01_10-00", "2018-12-31_23-59", "2019-01-01_00-00"} {
		ts, err := ParseTimestamp(name)
		assert.Nil(t, err)
		assert.Equal(t, name, FormatTimestamp(ts))

		again, err := ParseTimestamp(FormatTimestamp(ts))
		assert.Nil(t, err)
		assert.True(t, again.Equal(ts))
	}
}

func TestParseTimestampUTC(t *testing.T) {
	ts, err := ParseTimestamp("2018-05-01_10-00")
	assert.Nil(t, err)
	assert.True(t, ts.Equal(time.Date(2018, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, ts.Location())
}

func TestParseTimestampRejectsOtherNames(t *testing.T) {
	for _, name := range []string{"2018-05-01", "2018_backup", "2018-05-01_10:00", "2018-05-01_9-00", "2018-5-01_09-00", "results", ""} {
		_, err := ParseTimestamp(name)
		if !errors.Is(err, ErrTimestampFormat) {
			t.Fatalf("ParseTimestamp(%q) err = %v, want ErrTimestampFormat", name, err)
		}
		assert.True(t, strings.Contains(err.Error(), name))
	}
}

func TestDirectionNames(t *testing.T) {
	assert.Equal(t, "upload", Upload.String())
	assert.Equal(t, "download", Download.String())
	assert.Equal(t, "unknown", Direction(7).String())

	d, err := ParseDirection(" Download ")
	assert.Nil(t, err)
	assert.Equal(t, Download, d)

	_, err = ParseDirection("sideways")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestMatchDirection(t *testing.T) {
	tests := []struct {
		conv   Convention
		name   string
		want   Direction
		wantOk bool
	}{
		{ConventionSuffix, "server1_upload", Upload, true},
		{ConventionSuffix, "server1_download", Download, true},
		{ConventionSuffix, "download", Download, true},
		{ConventionSuffix, "server1_upload.json", Upload, false},
		{ConventionSuffix, "notes.txt", Upload, false},
		{ConventionLog, "server1-upload.log", Upload, true},
		{ConventionLog, "server1-download.log", Download, true},
		{ConventionLog, "server1-download", Upload, false},
		{ConventionLog, "server1.log", Upload, false},
		{ConventionLog, "upload.log.bak", Upload, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.conv)+"/"+tt.name, func(t *testing.T) {
			got, ok := tt.conv.MatchDirection(tt.name)
			assert.Equal(t, tt.wantOk, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("")
	assert.Nil(t, err)
	assert.Equal(t, ConventionSuffix, c)

	c, err = ParseConvention("LOG")
	assert.Nil(t, err)
	assert.Equal(t, ConventionLog, c)

	_, err = ParseConvention("extension")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestBatchName(t *testing.T) {
	assert.Equal(t, "2018-05-01_10-00", BatchName("results/2018-05-01_10-00/"))
	assert.Equal(t, "2018-05-01_10-00", BatchName("2018-05-01_10-00"))
}

func TestMarshalResult(t *testing.T) {
	r, err := MarshalResult(map[string]float64{"bps": 2000000})
	assert.Nil(t, err)
	var out map[string]float64
	assert.Nil(t, UnMarshalResult(r, &out))
	assert.Equal(t, 2000000.0, out["bps"])
}
