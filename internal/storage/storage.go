package storage

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/abatilo/taskwiz/internal/task"
)

const fileExt = ".yaml"

// Store handles record file operations.
type Store struct {
	basePath string
}

// NewStoreWithPath creates a Store rooted at path.
func NewStoreWithPath(path string) *Store {
	return &Store{basePath: path}
}

// BasePath returns the base path of the store.
func (s *Store) BasePath() string {
	return s.basePath
}

// IsInitialized checks if the data directory exists.
func (s *Store) IsInitialized() bool {
	info, err := os.Stat(s.basePath)
	return err == nil && info.IsDir()
}

// Init creates the data directory.
func (s *Store) Init(force bool) error {
	if s.IsInitialized() && !force {
		return AlreadyInitializedError{Path: s.basePath}
	}
	//nolint:gosec // G301: 0755 is appropriate for a user data directory
	return os.MkdirAll(s.basePath, 0o755)
}

// recordPath returns the full path for a record file.
func (s *Store) recordPath(uuid string) string {
	return filepath.Join(s.basePath, uuid+fileExt)
}

// Exists checks if a record with the given UUID exists.
func (s *Store) Exists(uuid string) bool {
	_, err := os.Stat(s.recordPath(uuid))
	return err == nil
}

// Save writes a new record to disk. Records are immutable, so an
// existing file is never overwritten.
func (s *Store) Save(rec task.Record) error {
	if !s.IsInitialized() {
		return NotInitializedError{Path: s.basePath}
	}
	if s.Exists(rec.UUID) {
		return AlreadyExistsError{UUID: rec.UUID}
	}
	content, err := SerializeRecord(rec)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: 0644 is appropriate for user-readable records
	return os.WriteFile(s.recordPath(rec.UUID), content, 0o644)
}

// Load reads a record from disk.
func (s *Store) Load(uuid string) (task.Fields, error) {
	if !s.IsInitialized() {
		return nil, NotInitializedError{Path: s.basePath}
	}
	content, err := os.ReadFile(s.recordPath(uuid))
	if os.IsNotExist(err) {
		return nil, TaskNotFoundError{UUID: uuid}
	}
	if err != nil {
		return nil, err
	}
	return ParseRecord(content)
}

// Delete removes a record file.
func (s *Store) Delete(uuid string) error {
	if !s.IsInitialized() {
		return NotInitializedError{Path: s.basePath}
	}
	err := os.Remove(s.recordPath(uuid))
	if os.IsNotExist(err) {
		return TaskNotFoundError{UUID: uuid}
	}
	return err
}

// List returns all records matching filter, sorted by priority
// (highest first) then by entry (oldest first).
func (s *Store) List(filter StatusFilter) ([]task.Fields, error) {
	if !s.IsInitialized() {
		return nil, NotInitializedError{Path: s.basePath}
	}

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, err
	}

	var records []task.Fields
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		fields, loadErr := s.Load(strings.TrimSuffix(entry.Name(), fileExt))
		if loadErr != nil {
			continue // Skip malformed files
		}
		if filter.Matches(statusOf(fields)) {
			records = append(records, fields)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		pi := task.PriorityOrder(priorityOf(records[i]))
		pj := task.PriorityOrder(priorityOf(records[j]))
		if pi != pj {
			return pi < pj
		}
		// Entry timestamps sort lexically.
		return stringField(records[i], task.FieldEntry) < stringField(records[j], task.FieldEntry)
	})

	return records, nil
}

// StatusFilter controls which statuses to include in list results.
type StatusFilter struct {
	Statuses []task.Status
}

// Matches returns true if the status should be included.
func (f StatusFilter) Matches(status task.Status) bool {
	// If no filter is set, include all
	if len(f.Statuses) == 0 {
		return true
	}
	return slices.Contains(f.Statuses, status)
}

func stringField(fields task.Fields, name string) string {
	s, _ := fields[name].(string)
	return s
}

func statusOf(fields task.Fields) task.Status {
	return task.Status(stringField(fields, task.FieldStatus))
}

func priorityOf(fields task.Fields) task.Priority {
	return task.Priority(stringField(fields, task.FieldPriority))
}
