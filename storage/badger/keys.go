package badger

import (
	"encoding/binary"

	"github.com/poiesic/lessonsim/core"
)

// Key prefixes for different data types
const (
	lessonPrefix    = "lesson:"
	lessonKeyPrefix = "lessonkey:"
	lessonIDSeq     = "lessonseq"
)

// makeLessonKey generates the primary key of a lesson.
// Format: prefix + big-endian id, so key order equals id order.
func makeLessonKey(id core.ID) []byte {
	buf := make([]byte, len(lessonPrefix)+8)
	offset := copy(buf, lessonPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeLessonIndexKey generates the unique index key for an external lesson key.
// Format: prefix + key
func makeLessonIndexKey(key string) []byte {
	buf := make([]byte, len(lessonKeyPrefix)+len(key))
	offset := copy(buf, lessonKeyPrefix)
	copy(buf[offset:], key)
	return buf
}
