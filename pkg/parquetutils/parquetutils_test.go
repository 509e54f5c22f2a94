package parquetutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    int64  `parquet:"name=id, type=INT64"`
	Owner string `parquet:"name=owner, type=BYTE_ARRAY, convertedtype=UTF8"`
	Proxy bool   `parquet:"name=proxy, type=BOOLEAN"`
}

func TestWriteAllReadAll(t *testing.T) {
	records := []testRecord{
		{ID: 1, Owner: "alice"},
		{ID: 2, Owner: "proxy1", Proxy: true},
		{ID: 10, Owner: "bob"},
	}

	data, err := WriteAll(records)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "PAR1", string(data[:4]))

	decoded, err := ReadAll[testRecord](NewBufferFile(data))
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}
