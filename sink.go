package scenecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// RowSink receives the header once, then every row in export order.
// Close must flush and release the sink on every path, including after errors.
type RowSink interface {
	WriteHeader(header []string) error
	WriteRow(record []string) error
	Close() error
}

type CSVSink struct {
	w      *csv.Writer
	closer io.Closer
}

// CreateCSV opens path for writing, truncating any existing file.
func CreateCSV(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv %s: %w", path, err)
	}
	return &CSVSink{w: csv.NewWriter(f), closer: f}, nil
}

// NewCSVSink writes to w; Close flushes but does not close w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) WriteHeader(header []string) error {
	return s.WriteRow(header)
}

func (s *CSVSink) WriteRow(record []string) error {
	if err := s.w.Write(record); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		err = errors.Join(err, s.closer.Close())
		s.closer = nil
	}
	return err
}

type teeSink []RowSink

// Tee fans rows out to several sinks. A write fails on the first sink error;
// Close closes every sink.
func Tee(sinks ...RowSink) RowSink {
	return teeSink(sinks)
}

func (t teeSink) WriteHeader(header []string) error {
	for _, s := range t {
		if err := s.WriteHeader(header); err != nil {
			return err
		}
	}
	return nil
}

func (t teeSink) WriteRow(record []string) error {
	for _, s := range t {
		if err := s.WriteRow(record); err != nil {
			return err
		}
	}
	return nil
}

func (t teeSink) Close() error {
	var errs []error
	for _, s := range t {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
