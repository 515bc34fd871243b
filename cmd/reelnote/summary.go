package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"reelnote/internal/enrich"
)

// renderSummary builds the end-of-run report: a per-note listing followed by
// the processed/skipped/failed tally. Terminals get rounded tables; piped
// output gets plain lines.
func renderSummary(report enrich.Report, tty bool) string {
	var builder strings.Builder

	if len(report.Results) > 0 {
		rows := make([][]string, 0, len(report.Results))
		for _, result := range report.Results {
			title := result.Title
			if title == "" {
				title = filepath.Base(result.Path)
			}
			rows = append(rows, []string{title, result.Status.String(), result.Detail})
		}
		if tty {
			builder.WriteString(renderTable([]string{"Note", "Status", "Detail"}, rows, false))
			builder.WriteString("\n")
		} else {
			for _, row := range rows {
				builder.WriteString(row[0])
				builder.WriteString(": ")
				builder.WriteString(row[1])
				if row[2] != "" {
					builder.WriteString(" (")
					builder.WriteString(row[2])
					builder.WriteString(")")
				}
				builder.WriteString("\n")
			}
		}
	}

	if report.Stopped {
		builder.WriteString("Run stopped by user.\n")
	}

	if tty {
		builder.WriteString(renderTable(
			[]string{"Processed", "Skipped", "Failed"},
			[][]string{{
				strconv.Itoa(report.Processed),
				strconv.Itoa(report.Skipped),
				strconv.Itoa(report.Failed),
			}},
			true,
		))
	} else {
		fmt.Fprintf(&builder, "Processed: %d  Skipped: %d  Failed: %d\n",
			report.Processed, report.Skipped, report.Failed)
	}
	return builder.String()
}
