// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/StuttgarterDotNet/contextual-encoders/config"
	"github.com/StuttgarterDotNet/contextual-encoders/encoder"
	"github.com/StuttgarterDotNet/contextual-encoders/matrix"
	"github.com/StuttgarterDotNet/contextual-encoders/metrics"
)

var (
	errBadDelimiter  = errors.New("delimiter must be a single character")
	errMissingColumn = errors.New("column missing from header")
)

const encodeLongDesc string = `Encode CSV rows into coordinates.

Reads one record per row. Without --header, records must hold exactly one
field per configured column, in order. With --header, columns are picked by
name and extra fields are ignored; the output then starts with x1..xm.

Examples:
  ctxenc encode -c encoder.yaml -i data.csv --header
  ctxenc encode -c encoder.yaml < data.csv > points.csv
  ctxenc encode -c encoder.yaml -i data.csv --metrics-file run.prom`

const encodeShortDesc string = "Encode CSV rows into coordinates"

type encodeCommander struct {
	root *rootCommander

	configPath    string
	input         string
	output        string
	similarityOut string
	delimiter     string
	header        bool
}

func newEncodeCmd(root *rootCommander) *cobra.Command {
	c := &encodeCommander{root: root}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: encodeShortDesc,
		Long:  encodeLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&c.configPath, "config", "c", "", "Encoder document (YAML)")
	f.StringVarP(&c.input, "input", "i", "-", "Input CSV, - for stdin")
	f.StringVarP(&c.output, "output", "o", "-", "Output CSV, - for stdout")
	f.StringVar(&c.similarityOut, "similarity-out", "", "Write the aggregated similarity matrix as CSV")
	f.StringVar(&c.delimiter, "delimiter", ",", "CSV field delimiter")
	f.BoolVar(&c.header, "header", false, "Input has a header row; output gets one too")
	f.Int("workers", 0, "Columns computed concurrently (0 keeps the document value)")
	f.String("metrics-file", "", "Write Prometheus metrics of the run to this file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (c *encodeCommander) run(cmd *cobra.Command) error {
	delim, size := utf8.DecodeRuneInString(c.delimiter)
	if size == 0 || size != len(c.delimiter) {
		return fmt.Errorf("%q: %w", c.delimiter, errBadDelimiter)
	}

	doc, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("loading encoder: %w", err)
	}

	reg := prometheus.NewRegistry()
	log := c.root.log.With("run", uuid.NewString())
	cfg, err := doc.EncoderConfig(log, metrics.New(reg))
	if err != nil {
		return err
	}
	if w := c.root.settings.Workers; w > 0 {
		cfg.Workers = w
	}
	enc, err := encoder.New(cfg)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, c.input)
	if err != nil {
		return err
	}
	defer closeIn()
	rows, err := readRows(in, delim, c.header, enc.Columns())
	if err != nil {
		return err
	}
	log.Debug("rows read", "rows", len(rows), "columns", len(enc.Columns()))

	pts, err := enc.TransformContext(cmd.Context(), rows)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, c.output)
	if err != nil {
		return err
	}
	defer closeOut()
	var header []string
	if c.header {
		header = make([]string, pts.Cols())
		for j := range header {
			header[j] = "x" + strconv.Itoa(j+1)
		}
	}
	if err := writeMatrix(out, delim, header, pts); err != nil {
		return err
	}

	if c.similarityOut != "" {
		if err := writeMatrixFile(c.similarityOut, delim, enc.Similarity()); err != nil {
			return err
		}
	}
	if path := c.root.settings.MetricsFile; path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	log.Info("encoded", "rows", pts.Rows(), "components", pts.Cols(), "stress", enc.Stress())

	return nil
}

// readRows reads records and projects them onto columns. With header, the
// first record names the fields.
func readRows(r io.Reader, delim rune, header bool, columns []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if !header {
		return records, nil
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading csv: %w", io.ErrUnexpectedEOF)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	pick := make([]int, len(columns))
	for j, name := range columns {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, errMissingColumn)
		}
		pick[j] = i
	}

	rows := make([][]string, 0, len(records)-1)
	for n, rec := range records[1:] {
		row := make([]string, len(pick))
		for j, i := range pick {
			if i >= len(rec) {
				return nil, fmt.Errorf("record %d: %q: %w", n+2, columns[j], errMissingColumn)
			}
			row[j] = rec[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func writeMatrix(w io.Writer, delim rune, header []string, m *matrix.Dense) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	if header != nil {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	record := make([]string, m.Cols())
	for _, row := range m.ToRows() {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeMatrixFile(path string, delim rune, m *matrix.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeMatrix(f, delim, nil, m); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
