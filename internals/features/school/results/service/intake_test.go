package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVRows(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	csv := "student_id,score,comment,coefficient\n" +
		a.String() + ",14.5,good work,2\n" +
		b.String() + ",9,,\n"

	rows, rowErrs, err := ParseCSVRows(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	assert.Equal(t, a, rows[0].StudentID)
	assert.Equal(t, 14.5, rows[0].Score)
	require.NotNil(t, rows[0].Comment)
	assert.Equal(t, "good work", *rows[0].Comment)
	require.NotNil(t, rows[0].Coefficient)
	assert.Equal(t, 2.0, *rows[0].Coefficient)

	assert.Equal(t, b, rows[1].StudentID)
	assert.Equal(t, 9.0, rows[1].Score)
	assert.Nil(t, rows[1].Comment)
	assert.Nil(t, rows[1].Coefficient)
}

func TestParseCSVRowsCamelCaseHeader(t *testing.T) {
	a := uuid.New()
	csv := "studentId,score\n" + a.String() + ",12\n"

	rows, rowErrs, err := ParseCSVRows(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, a, rows[0].StudentID)
}

func TestParseCSVRowsBadRowsKeepTheirIndex(t *testing.T) {
	a := uuid.New()
	csv := "student_id,score\n" +
		"not-a-uuid,12\n" +
		a.String() + ",not-a-number\n" +
		a.String() + ",15\n"

	rows, rowErrs, err := ParseCSVRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 15.0, rows[0].Score)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 0, rowErrs[0].Index)
	assert.Contains(t, rowErrs[0].Error, "student_id")
	assert.Equal(t, 1, rowErrs[1].Index)
	assert.Contains(t, rowErrs[1].Error, "score")
}

func TestParseCSVRowsKeepOriginalIndexPastBadRows(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	csv := "student_id,score\n" +
		a.String() + ",12\n" +
		"not-a-uuid,12\n" +
		b.String() + ",15\n"

	rows, rowErrs, err := ParseCSVRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rowErrs, 1)
	assert.Equal(t, 1, rowErrs[0].Index)

	// surviving rows keep the file's data-row index, not their slice position,
	// so an insert failure on rows[1] reports index 2 alongside the parse error
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, a, rows[0].StudentID)
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, b, rows[1].StudentID)
}

func TestParseCSVRowsMissingColumns(t *testing.T) {
	_, _, err := ParseCSVRows(strings.NewReader("foo,bar\n1,2\n"))
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, _, err = ParseCSVRows(strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
