package harvest

import (
	"net/url"
	"strconv"
)

// Query helpers translate filter struct fields into URL parameters.
// Unset fields (zero values, nil pointers) are omitted entirely so the
// API applies its own defaults.

func addString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func addID(q url.Values, key string, id int64) {
	if id > 0 {
		q.Set(key, strconv.FormatInt(id, 10))
	}
}

func addBool(q url.Values, key string, b *bool) {
	if b != nil {
		q.Set(key, strconv.FormatBool(*b))
	}
}
