package mockapi

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
	cursorPrefix    = "o:"
)

// paginate slices items from the offset encoded in cursor. It returns the
// next cursor, or "" on the last page. An undecodable cursor reports ok
// false.
func paginate[T any](items []T, cursor string, limit int) (page []T, next, prev string, ok bool) {
	offset := 0
	if cursor != "" {
		if offset, ok = decodeCursor(cursor); !ok {
			return nil, "", "", false
		}
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	if offset > len(items) {
		offset = len(items)
	}
	end := min(offset+limit, len(items))
	if end < len(items) {
		next = encodeCursor(end)
	}
	if offset > 0 {
		prev = encodeCursor(max(offset-limit, 0))
	}
	return items[offset:end], next, prev, true
}

func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, false
	}
	n, found := strings.CutPrefix(string(raw), cursorPrefix)
	if !found {
		return 0, false
	}
	offset, err := strconv.Atoi(n)
	if err != nil || offset < 0 {
		return 0, false
	}
	return offset, true
}
