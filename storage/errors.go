package storage

import "errors"

var (
	// ErrNilFile is returned when a nil upload is provided
	ErrNilFile = errors.New("upload is nil")

	// ErrInvalidConfig is returned when a backend is created with missing required settings
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// ErrInvalidPath is returned when the path contains traversal attempts or escapes the base directory
	ErrInvalidPath = errors.New("invalid path")

	// ErrFileNotFound is returned when an object does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrFailedToCreateDirectory is returned when a directory cannot be created
	ErrFailedToCreateDirectory = errors.New("failed to create directory")

	// ErrFailedToReadFile is returned when the upload's temp file cannot be read
	ErrFailedToReadFile = errors.New("failed to read file")

	// ErrFailedToWriteFile is returned when the destination cannot be written
	ErrFailedToWriteFile = errors.New("failed to write file")

	// ErrFailedToDeleteFile is returned when an object cannot be deleted
	ErrFailedToDeleteFile = errors.New("failed to delete file")
)
