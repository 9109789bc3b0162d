package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/khalid-nowaf/ternary"
)

type Writer interface {
	Write(dict *ternary.Dictionary[string], out io.Writer) error
}

type JsonWriter struct {
	KeyCol   string
	ValueCol string
	Stats    *Stats
}

func (w JsonWriter) Write(dict *ternary.Dictionary[string], out io.Writer) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	var err error
	dict.ForEach(func(key, value string) bool {
		if w.Stats.Output > 0 {
			if _, err = out.Write([]byte(",")); err != nil {
				return false
			}
		}
		if err = encoder.Encode(Record{w.KeyCol: key, w.ValueCol: value}); err != nil {
			return false
		}
		w.Stats.Output++
		return true
	})
	if err != nil {
		return err
	}
	_, err = out.Write([]byte("]\n"))
	return err
}

type CsvWriter struct {
	isTSV    bool
	KeyCol   string
	ValueCol string
	Stats    *Stats
}

// Write writes a header line followed by one record per entry.
func (w CsvWriter) Write(dict *ternary.Dictionary[string], out io.Writer) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{w.KeyCol, w.ValueCol}); err != nil {
		return err
	}

	var err error
	dict.ForEach(func(key, value string) bool {
		if err = writer.Write([]string{key, value}); err != nil {
			return false
		}
		w.Stats.Output++
		return true
	})
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func newWriter(format string, src *Source, stats *Stats) Writer {
	switch format {
	case "json":
		return JsonWriter{KeyCol: src.KeyCol, ValueCol: src.ValueCol, Stats: stats}
	case "tsv":
		return CsvWriter{isTSV: true, KeyCol: src.KeyCol, ValueCol: src.ValueCol, Stats: stats}
	default:
		return CsvWriter{KeyCol: src.KeyCol, ValueCol: src.ValueCol, Stats: stats}
	}
}
