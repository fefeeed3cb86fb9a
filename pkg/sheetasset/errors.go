package sheetasset

import "errors"

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested data sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")
