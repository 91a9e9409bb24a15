package sink

import (
	"github.com/parquet-go/parquet-go"
)

// ParquetSaver writes rows as a Parquet file.
type ParquetSaver struct{}

// Extension returns the file extension for parquet output.
func (ParquetSaver) Extension() string { return "parquet" }

// Save writes the rows to path.
func (ParquetSaver) Save(rows []Row, path string) error {
	return parquet.WriteFile(path, rows)
}
