package registry

import "fmt"

// FileOperationError wraps any failure during a JSON or XML save or load,
// carrying the failed operation, the file path and the underlying cause.
type FileOperationError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileOperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileOperationError) Unwrap() error {
	return e.Err
}
