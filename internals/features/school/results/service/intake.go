// file: internals/features/school/results/service/intake.go
package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// intake adapters: parse a tabular upload into BulkRow values and delegate
// to BulkCreateDrafts. Recognized headers: studentId|student_id, score,
// comment, coefficient (case-insensitive).

type intakeColumns struct {
	student, score, comment, coefficient int
}

func mapIntakeHeaders(headers []string) (intakeColumns, error) {
	cols := intakeColumns{student: -1, score: -1, comment: -1, coefficient: -1}
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "studentid", "student_id":
			cols.student = i
		case "score":
			cols.score = i
		case "comment":
			cols.comment = i
		case "coefficient":
			cols.coefficient = i
		}
	}
	if cols.student < 0 || cols.score < 0 {
		return cols, Validation("headers", "studentId and score columns are required")
	}
	return cols, nil
}

func parseIntakeRow(cols intakeColumns, cells []string) (BulkRow, error) {
	var row BulkRow

	get := func(idx int) string {
		if idx < 0 || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	id, err := uuid.Parse(get(cols.student))
	if err != nil {
		return row, Validation("student_id", "is not a valid uuid")
	}
	row.StudentID = id

	score, err := strconv.ParseFloat(get(cols.score), 64)
	if err != nil {
		return row, Validation("score", "is not a number")
	}
	row.Score = score

	if c := get(cols.comment); c != "" {
		row.Comment = &c
	}
	if c := get(cols.coefficient); c != "" {
		coeff, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return row, Validation("coefficient", "is not a number")
		}
		row.Coefficient = &coeff
	}
	return row, nil
}

// ParseCSVRows reads an intake CSV (header row first) into BulkRow values.
// Unparseable rows come back as errors keyed by their sheet index so the
// caller can merge them into the bulk report.
func ParseCSVRows(r io.Reader) ([]BulkRow, []BulkRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, Validation("file", "empty or unreadable CSV")
	}
	cols, err := mapIntakeHeaders(headers)
	if err != nil {
		return nil, nil, err
	}

	var rows []BulkRow
	var rowErrs []BulkRowError
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, BulkRowError{Index: i, Error: "malformed CSV row"})
			continue
		}
		row, err := parseIntakeRow(cols, record)
		if err != nil {
			rowErrs = append(rowErrs, BulkRowError{Index: i, Error: err.Error()})
			continue
		}
		row.Index = i
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

// ParseXLSXRows reads the first sheet of an intake workbook the same way
// ParseCSVRows reads a CSV.
func ParseXLSXRows(r io.Reader) ([]BulkRow, []BulkRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, Validation("file", "empty or unreadable workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, Validation("file", "workbook has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, Validation("file", "unreadable sheet")
	}
	if len(all) == 0 {
		return nil, nil, Validation("file", "empty sheet")
	}

	cols, err := mapIntakeHeaders(all[0])
	if err != nil {
		return nil, nil, err
	}

	var rows []BulkRow
	var rowErrs []BulkRowError
	for i, cells := range all[1:] {
		row, err := parseIntakeRow(cols, cells)
		if err != nil {
			rowErrs = append(rowErrs, BulkRowError{Index: i, Error: err.Error()})
			continue
		}
		row.Index = i
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}
