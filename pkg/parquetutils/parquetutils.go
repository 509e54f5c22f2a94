package parquetutils

import (
	"github.com/cockroachdb/errors"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

var (
	// ReaderConcurrency parallel number of file readers.
	ReaderConcurrency int64 = 8

	// WriterConcurrency parallel number of column encoders.
	WriterConcurrency int64 = 4
)

// ReadAll reads all records from the parquet file.
func ReadAll[T any](sourceFile source.ParquetFile) ([]T, error) {
	r, err := reader.NewParquetReader(sourceFile, new(T), ReaderConcurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet reader")
	}
	defer r.ReadStop()

	data := make([]T, r.GetNumRows())
	if err = r.Read(&data); err != nil {
		return nil, errors.Wrap(err, "failed to read parquet data")
	}

	return data, nil
}

// WriteAll encodes records as a snappy compressed parquet file held in memory.
func WriteAll[T any](records []T) ([]byte, error) {
	file := NewBufferFileCapacity(4096)
	w, err := writer.NewParquetWriter(file, new(T), WriterConcurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet writer")
	}
	w.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range records {
		if err := w.Write(records[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to write parquet record %d", i)
		}
	}
	if err := w.WriteStop(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize parquet file")
	}
	return file.Bytes(), nil
}
