package captions

import (
	"fmt"
	"strconv"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type TableOptions struct {
	// Plain switches to ASCII borders for output that is not a terminal.
	Plain bool
}

// RenderTable lists records in store order.
func RenderTable(records domain.WorkingList, opts TableOptions) string {
	tw := table.NewWriter()
	if opts.Plain {
		tw.SetStyle(table.StyleDefault)
	} else {
		tw.SetStyle(table.StyleRounded)
	}
	tw.Style().Format.Footer = text.FormatDefault

	tw.AppendHeader(table.Row{"#", "Image", "Caption"})
	for i, record := range records {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), record.Filename, record.Caption})
	}
	tw.AppendFooter(table.Row{"", "total", fmt.Sprintf("%d images, %d captioned", len(records), records.Captioned())})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 72},
	})

	return tw.Render()
}
