package savedata

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/DMaendlen/netmeasure/evaluation"

	"github.com/hyp3rd/ewrap"
)

var csvHeader = []string{"timestamp", "direction", "bps", "mbps", "valid_files", "rejected_files"}

type SaveCSV struct {
	Name string
	Fp   *os.File
	Data [][]string
}

func (mycsv *SaveCSV) NewCSV(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return ewrap.Wrapf(err, "create csv %s", filename)
	}
	mycsv.Name = filename
	mycsv.Fp = file
	mycsv.Data = make([][]string, 0)
	return nil
}

func (mycsv *SaveCSV) CloseCSV() error {
	if mycsv.Fp == nil {
		return ewrap.New("csv not initialised")
	}
	w := csv.NewWriter(mycsv.Fp)
	if err := w.WriteAll(mycsv.Data); err != nil {
		_ = mycsv.Fp.Close()
		return ewrap.Wrapf(err, "write csv %s", mycsv.Name)
	}
	return mycsv.Fp.Close()
}

//Append one element to csv data, no actual write
func (mycsv *SaveCSV) AddOneToCSV(data []string) {
	mycsv.Data = append(mycsv.Data, data)
}

// CSVName is <dir>/<direction>.csv
func CSVName(dir string, s evaluation.Series) string {
	return filepath.Join(dir, s.Direction.String()+".csv")
}

// SaveSeriesCSV writes one row per point of s, with a header row.
func SaveSeriesCSV(path string, s evaluation.Series) error {
	out := &SaveCSV{}
	if err := out.NewCSV(path); err != nil {
		return err
	}
	out.AddOneToCSV(csvHeader)
	for _, p := range s.Points {
		out.AddOneToCSV([]string{
			p.Label,
			s.Direction.String(),
			strconv.FormatFloat(p.Bps, 'f', -1, 64),
			p.Display(),
			strconv.Itoa(p.Valid),
			strconv.Itoa(p.Rejected),
		})
	}
	return out.CloseCSV()
}
