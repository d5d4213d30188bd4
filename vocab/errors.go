package vocab

import "errors"

// ErrInvalidVocabulary indicates a vocabulary definition that cannot be used.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")
