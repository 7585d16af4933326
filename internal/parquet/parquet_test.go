package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/wily/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRevisionsParquet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "revisions.parquet")
	data := []Revision{
		{Archiver: "git", Key: "abc1234", Author: "alice", Message: "init", Date: time.Now()},
		{Archiver: "git", Key: "def5678", Author: "bob", Message: "fix", Date: time.Now()},
	}

	require.NoError(t, WriteRevisionsParquet(data, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteValuesParquet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "values.parquet")
	data := []Value{
		{Archiver: "git", Revision: "abc1234", Operator: "raw", Path: "src/app.py", Key: "loc", Number: 120},
		{Archiver: "git", Revision: "abc1234", Operator: "maintainability", Path: "src/app.py", Key: "rank", Text: "A"},
	}

	require.NoError(t, WriteValuesParquet(data, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestConvertRecords(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	revs := ConvertRevisionRecords([]schema.RevisionRecord{
		{Archiver: "git", Key: "abc", Author: "alice", Message: "m", Date: date},
	})
	require.Len(t, revs, 1)
	assert.Equal(t, "git", revs[0].Archiver)
	assert.Equal(t, date, revs[0].Date)

	vals := ConvertValueRecords([]schema.ValueRecord{
		{Archiver: "git", Revision: "abc", Operator: "raw", Path: "p", Key: "loc", Number: 3, Text: ""},
	})
	require.Len(t, vals, 1)
	assert.Equal(t, "loc", vals[0].Key)
	assert.Equal(t, 3.0, vals[0].Number)
}
