package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/ternary"
	"github.com/khalid-nowaf/ternary/pkg/tst"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

type Record map[string]string

type Entry struct {
	Key   string
	Value string
}

// Stats counts what happened to the entries of one run.
type Stats struct {
	Input      int
	Duplicates int
	Output     int
}

// Source describes where the dictionary entries come from. It is embedded
// by every command that works on a loaded dictionary.
type Source struct {
	Files     []string `arg:"" type:"existingfile" help:"CSV, TSV or JSON files holding the entries"`
	KeyCol    string   `help:"Column holding the keys" default:"key"`
	ValueCol  string   `help:"Column holding the values" default:"value"`
	Normalize bool     `help:"Bring keys and queries to Unicode NFC"`
}

// load reads all files into a new dictionary. The first value seen for a
// key wins.
func (src *Source) load(ctx *Context) (*ternary.Dictionary[string], *Stats, error) {
	opts := []ternary.Option[string]{
		ternary.WithTreeOptions(tst.WithLogger[rune, string](ctx.Log.Named("tst"))),
	}
	if src.Normalize {
		opts = append(opts, ternary.WithNormalization[string](norm.NFC))
	}
	dict := ternary.NewDictionary(opts...)
	stats := &Stats{}

	for _, file := range src.Files {
		before := stats.Input
		err := src.parseFile(file, func(e Entry) error {
			stats.Input++
			size := dict.Len()
			stored, err := dict.Insert(e.Key, e.Value)
			if err != nil {
				return err
			}
			if dict.Len() == size {
				stats.Duplicates++
				ctx.Log.Debug("duplicate key kept first value",
					zap.String("key", e.Key), zap.String("kept", stored), zap.String("dropped", e.Value))
			}
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", file, err)
		}
		ctx.Log.Info("loaded entries", zap.String("file", file), zap.Int("entries", stats.Input-before))
	}
	return dict, stats, nil
}

func (src *Source) parseFile(path string, onEachEntry func(e Entry) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJson(src, path, onEachEntry)
	case ".tsv":
		return parseCsv(src, path, '\t', onEachEntry)
	default:
		return parseCsv(src, path, ',', onEachEntry)
	}
}

func parseJson(src *Source, path string, onEachEntry func(e Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		data := Record{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		entry, err := parseEntry(data, src)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseCsv(src *Source, path string, comma rune, onEachEntry func(e Entry) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		entry, err := parseEntry(record, src)
		if err != nil {
			return err
		}
		if err = onEachEntry(entry); err != nil {
			return err
		}
	}
}

func parseEntry(record Record, src *Source) (Entry, error) {
	key, found := record[src.KeyCol]
	if !found {
		return Entry{}, fmt.Errorf("record %v has no %q column", record, src.KeyCol)
	}
	if key == "" {
		return Entry{}, fmt.Errorf("record %v has an empty key", record)
	}
	return Entry{Key: key, Value: record[src.ValueCol]}, nil
}
