package main

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/handiism/coverfix/internal/curate"
	"github.com/handiism/coverfix/internal/model"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderSummaryTable(s *curate.Summary) string {
	rows := [][]string{
		{"Total files checked", fmt.Sprint(s.Total)},
		{"Already had album art", fmt.Sprint(s.WithArt)},
	}
	for _, o := range model.Outcomes {
		rows = append(rows, []string{o.Label(), fmt.Sprint(s.Count(o))})
	}
	rows = append(rows, []string{"Duplicate candidates", fmt.Sprint(s.DuplicateCount())})

	return renderTable([]string{"Summary", "Files"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderDuplicatesTable(root string, pairs []model.DuplicatePair) string {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{
			relPath(root, p.Original.Path),
			fmt.Sprintf("%.0fs", p.Original.Duration),
			relPath(root, p.Duplicate.Path),
			fmt.Sprintf("%.0fs", p.Duplicate.Duration),
		})
	}
	return renderTable(
		[]string{"Original", "Length", "Possible duplicate", "Length"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight},
	)
}

func renderInspectTable(root string, rows []curate.InspectRow) string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, inspectRow(root, row))
	}
	return renderTable(
		[]string{"File", "Key", "Name OK", "Tags", "Verdict", "Size", "Length"},
		out,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
