package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	Date      string `excel:"日期"`
	ClassName string `excel:"课程名称"`
	Skipped   string `excel:"-"`
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := []exportRow{
		{Date: "2024-02-12", ClassName: "数据结构", Skipped: "x"},
		{Date: "2024-02-19", ClassName: "数据结构", Skipped: "x"},
	}
	require.NoError(t, ExportToExcel(f, "2024-02", rows))

	header, err := f.GetCellValue("2024-02", "A1")
	require.NoError(t, err)
	assert.Equal(t, "日期", header)

	cell, err := f.GetCellValue("2024-02", "B3")
	require.NoError(t, err)
	assert.Equal(t, "数据结构", cell)

	// excel:"-" 的字段不导出
	skipped, err := f.GetCellValue("2024-02", "C1")
	require.NoError(t, err)
	assert.Empty(t, skipped)
}

func TestExportToExcel_EmptySlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	assert.NoError(t, ExportToExcel(f, "empty", []exportRow{}))
}
