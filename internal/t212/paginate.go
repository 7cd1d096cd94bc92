package t212

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// paginatedPage is the wire shape shared by all cursor-paginated list
// endpoints.
type paginatedPage[T any] struct {
	Items        []T    `json:"items"`
	NextPagePath string `json:"nextPagePath"`
}

// paginate follows nextPagePath continuations until the server stops
// returning one, flattening all pages into a single ordered slice. Query
// parameters only apply to the first request; continuation paths are
// self-contained.
func paginate[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var all []T
	for {
		var page paginatedPage[T]
		if err := c.request(ctx, http.MethodGet, path, query, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.NextPagePath == "" {
			return all, nil
		}
		path = page.NextPagePath
		query = nil
	}
}

// CursorFromPath extracts the integer cursor query parameter from a
// nextPagePath reference. The second return is false when the path carries no
// parseable cursor, which callers treat as the end of the sequence.
func CursorFromPath(path string) (int64, bool) {
	_, rawQuery, ok := strings.Cut(path, "?")
	if !ok {
		return 0, false
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return 0, false
	}
	raw := values.Get("cursor")
	if raw == "" {
		return 0, false
	}
	cursor, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return cursor, true
}
