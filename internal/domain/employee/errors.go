package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee id already exists")
	ErrNoDataToExport     = errors.New("no employees match the selected filters")
)
