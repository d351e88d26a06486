// SPDX-License-Identifier: EPL-2.0

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/noisewatch/monitor"
)

// header is always present, even for an empty store.
var header = []string{"ID", "Timestamp", "Level"}

// WriteCSV writes records to w in store order: a header row followed
// by one row per record. The Timestamp column renders the record's ID
// in local time; Level keeps two decimal places.
func WriteCSV(w io.Writer, records []monitor.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			time.UnixMilli(rec.ID).Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(rec.Level, 'f', 2, 64),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", rec.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// CSV returns the records as CSV text. An empty slice yields exactly
// the header line.
func CSV(records []monitor.Record) (string, error) {
	var sb strings.Builder

	if err := WriteCSV(&sb, records); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// CSVAction is the user-facing export: unlike CSV it refuses an empty
// store with ErrNoRecords so the caller can show a "nothing to
// export" notice instead of producing a header-only file.
func CSVAction(records []monitor.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	return CSV(records)
}
