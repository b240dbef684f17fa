package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/parcel-desk/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var cellFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// RenderTable 以带边框的网格输出表头与数据行
// 列宽按显示宽度计算，单元格中的换行显示为空格
func RenderTable(w io.Writer, header []string, rows [][]string) {
	tw := newTableWriter(len(header))
	tw.AppendHeader(toRow(header, len(header)))
	for _, row := range rows {
		tw.AppendRow(toRow(row, len(header)))
	}
	fmt.Fprintln(w, tw.Render())
}

// RenderReceipt 两列 Field/Value 收据
func RenderReceipt(w io.Writer, lines []models.ReceiptLine) {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{line.Label, line.Value})
	}
	RenderTable(w, []string{"Field", "Value"}, rows)
}

func newTableWriter(columns int) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	// 表头保持原样，不转大写
	tw.Style().Format.Header = text.FormatDefault

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 1; i <= columns; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignLeft, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw
}

// toRow 补齐或截断到 columns 列
func toRow(cells []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range row {
		value := ""
		if i < len(cells) {
			value = cellFlattener.Replace(cells[i])
		}
		row[i] = value
	}
	return row
}
