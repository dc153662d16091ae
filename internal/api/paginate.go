package api

import (
	"encoding/base64"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// parsePagination extracts cursor and limit from query parameters.
// limit defaults to 50 and is silently capped at 200.
func parsePagination(r *http.Request) (cursor string, limit int) {
	cursor = r.URL.Query().Get("cursor")
	limit = defaultLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return cursor, limit
}

// encodeCursor encodes an opaque pagination cursor from an offset into the
// album list.
func encodeCursor(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// decodeCursor decodes an opaque pagination cursor back to an offset.
// Returns 0 if the cursor is empty or invalid.
func decodeCursor(cursor string) int {
	if cursor == "" {
		return 0
	}
	b, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(b))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// page slices n items starting at the cursor and returns the cursor for the
// next page, or nil on the last one.
func page(n int, cursor string, limit int) (start, end int, next *string) {
	start = decodeCursor(cursor)
	if start > n {
		start = n
	}
	end = start + limit
	if end >= n {
		return start, n, nil
	}
	c := encodeCursor(end)
	return start, end, &c
}
