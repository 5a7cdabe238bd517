package export

import (
	"bytes"
	"errors"
	"fmt"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

func (f Format) Valid() bool {
	return f == FormatXLSX || f == FormatCSV
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Table is a row-oriented sheet: one header row followed by data rows.
// Every row must have len(Headers) cells.
type Table struct {
	SheetName string
	Headers   []string
	Rows      [][]string
}

// File is a rendered export ready to be downloaded or stored.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Render encodes the table in the requested format. The file name gets the
// format extension appended.
func Render(t Table, format Format, baseName string) (File, error) {
	var buf bytes.Buffer

	switch format {
	case FormatXLSX:
		if err := WriteXLSX(&buf, t); err != nil {
			return File{}, err
		}
	case FormatCSV:
		if err := WriteCSV(&buf, t); err != nil {
			return File{}, err
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return File{
		Name:        fmt.Sprintf("%s.%s", baseName, format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}
