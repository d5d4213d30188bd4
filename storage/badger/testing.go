package badger

import "github.com/poiesic/lessonsim/storage"

// NewMemoryRepository creates an in-memory lesson repository for testing.
// Caller must close both the repository and the backend when done.
func NewMemoryRepository() (storage.LessonRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewLessonRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
