package domain

import "errors"

var (
	ErrMissingFile     = errors.New("csv not found")
	ErrEmptyData       = errors.New("nothing to plot")
	ErrMissingColumn   = errors.New("missing required column")
	ErrUnparseableDate = errors.New("unparseable date")
	ErrMalformed       = errors.New("malformed csv")
)
