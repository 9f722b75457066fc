package storage

import "fmt"

// NotInitializedError indicates the data directory doesn't exist.
type NotInitializedError struct {
	Path string
}

func (e NotInitializedError) Error() string {
	return fmt.Sprintf("taskwiz not initialized at %s: run 'taskwiz init' first", e.Path)
}

// AlreadyInitializedError indicates the data directory already exists.
type AlreadyInitializedError struct {
	Path string
}

func (e AlreadyInitializedError) Error() string {
	return fmt.Sprintf("taskwiz already initialized at %s", e.Path)
}

// TaskNotFoundError indicates the UUID doesn't match any file.
type TaskNotFoundError struct {
	UUID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.UUID)
}

// AlreadyExistsError indicates a record with the same UUID is stored.
type AlreadyExistsError struct {
	UUID string
}

func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("task already exists: %s", e.UUID)
}
