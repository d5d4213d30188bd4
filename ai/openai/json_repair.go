// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It restores missing opening quotes before object keys and drops trailing
// commas before a closing bracket or brace. String contents are left untouched.
func repairJSON(s string) string {
	src := []rune(s)
	fixed := make([]rune, 0, len(src)+16)

	inString := false
	escaped := false
	for i := 0; i < len(src); i++ {
		ch := src[i]

		if inString {
			fixed = append(fixed, ch)
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
			fixed = append(fixed, ch)

		case ',':
			j := skipSpace(src, i+1)
			if j < len(src) && (src[j] == '}' || src[j] == ']') {
				// Trailing comma
				continue
			}
			fixed = append(fixed, ch)
			i = copyUnquotedKey(src, i+1, &fixed) - 1

		case '{':
			fixed = append(fixed, ch)
			i = copyUnquotedKey(src, i+1, &fixed) - 1

		default:
			fixed = append(fixed, ch)
		}
	}

	return string(fixed)
}

// copyUnquotedKey copies the whitespace following { or , and, when it is
// followed by a bare key closed by `":`, copies the key with its missing
// opening quote restored.
// Returns the index of the first rune not consumed.
func copyUnquotedKey(src []rune, i int, fixed *[]rune) int {
	j := skipSpace(src, i)
	*fixed = append(*fixed, src[i:j]...)

	if j >= len(src) || !isLetter(src[j]) {
		return j
	}

	end := j
	for end < len(src) && (isLetter(src[end]) || src[end] == '_') {
		end++
	}
	if end+1 < len(src) && src[end] == '"' && src[end+1] == ':' {
		*fixed = append(*fixed, '"')
		*fixed = append(*fixed, src[j:end+1]...)
		return end + 1
	}
	return j
}

func skipSpace(src []rune, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}
