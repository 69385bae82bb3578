package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrVersionNotFound     = errors.New("version not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrDuplicateFile       = errors.New("duplicate files are not allowed")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
