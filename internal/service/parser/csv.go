package parser

import (
	"encoding/csv"
	"fmt"
	"io"
)

// parseCSV 解析 CSV 上传文件
func parseCSV(r io.Reader, fiscalYear int) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 允许行长度不一致

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, errMissingAccountColumn()
	}

	return extractRows(records[0], records[1:], fiscalYear)
}
