// SPDX-License-Identifier: EPL-2.0

package export_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/noisewatch/export"
)

// ExampleWriteCSV shows the export shape: the header row is always
// present, even when no noise events have been recorded yet.
func ExampleWriteCSV() {
	if err := export.WriteCSV(os.Stdout, nil); err != nil {
		fmt.Println(err)
	}

	// Output:
	// ID,Timestamp,Level
}

// ExampleCSVAction demonstrates why the user-facing export actions
// differ from WriteCSV: with nothing recorded they signal a notice
// instead of handing out a header-only file.
func ExampleCSVAction() {
	_, err := export.CSVAction(nil)
	if errors.Is(err, export.ErrNoRecords) {
		fmt.Println("nothing to export yet")
	}

	// Output:
	// nothing to export yet
}
