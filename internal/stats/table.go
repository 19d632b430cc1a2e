package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const timeLayout = "2006-01-02 15:04"

// RenderHistory writes the report as aligned text tables.
func RenderHistory(w io.Writer, report Report) error {
	if len(report.Queries) == 0 {
		_, err := fmt.Fprintln(w, "No queries found.")
		return err
	}
	rows := make([][]string, 0, len(report.Queries))
	for _, q := range report.Queries {
		rows = append(rows, []string{
			q.AskedAt.Local().Format(timeLayout),
			q.Query,
			q.Alphagram,
			strconv.Itoa(q.Matches),
			strconv.FormatInt(q.DurationMs, 10),
		})
	}
	lines := formatTable([]string{"When", "Query", "Letters", "Matches", "Ms"}, rows, map[int]bool{3: true, 4: true})
	if err := writeLines(w, lines); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total matches: %d\n", report.TotalMatches); err != nil {
		return err
	}
	if len(report.Top) == 0 {
		return nil
	}
	topRows := make([][]string, 0, len(report.Top))
	for _, entry := range report.Top {
		topRows = append(topRows, []string{entry.Alphagram, strconv.Itoa(entry.Count), strconv.Itoa(entry.Matches)})
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeLines(w, formatTable([]string{"Letters", "Searches", "Matches"}, topRows, map[int]bool{1: true, 2: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
