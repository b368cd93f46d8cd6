package analyze

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"riskdice/trial"
)

// ErrMalformedRecord reports a line that does not parse as a trial record.
var ErrMalformedRecord = errors.New("malformed record")

// ParseRecord converts one CSV line into a trial record.
func ParseRecord(fields []string) (trial.Record, error) {
	if len(fields) != len(trial.Header) {
		return trial.Record{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), len(trial.Header))
	}

	counts := make([]int, 5)
	for i := range counts {
		value, err := strconv.Atoi(fields[i])
		if err != nil {
			return trial.Record{}, fmt.Errorf("%w: field %q is not an integer", ErrMalformedRecord, fields[i])
		}
		counts[i] = value
	}
	elapsed, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return trial.Record{}, fmt.Errorf("%w: field %q is not a number", ErrMalformedRecord, fields[5])
	}

	return trial.Record{
		AttackerLosses: counts[0],
		DefenderLosses: counts[1],
		Difference:     counts[2],
		MaxRolls:       counts[3],
		NonMaxRolls:    counts[4],
		ElapsedMS:      elapsed,
	}, nil
}

// ReadRecords reads every trial record from r. A leading header line is
// skipped; any other unparsable line fails the whole read with its line
// number.
func ReadRecords(r io.Reader) ([]trial.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field counts are checked per record

	var records []trial.Record
	line := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		line++
		if line == 1 && isHeader(fields) {
			continue
		}

		record, err := ParseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func isHeader(fields []string) bool {
	if len(fields) != len(trial.Header) {
		return false
	}
	for i, name := range trial.Header {
		if fields[i] != name {
			return false
		}
	}
	return true
}
