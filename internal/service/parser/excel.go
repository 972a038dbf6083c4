package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// parseExcel 解析 Excel 上传文件，取第一个工作表
func parseExcel(r io.Reader, fiscalYear int) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("empty workbook")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	if len(rows) == 0 {
		return nil, errMissingAccountColumn()
	}

	return extractRows(rows[0], rows[1:], fiscalYear)
}
