package aurora

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds a URL query string from key/value pairs.
//
// Pairs keep their insertion order when encoded, and pairs whose value is the
// empty string are dropped entirely. Both rules mirror the Aurora API's
// serialization convention and are relied on by server-side request signing,
// so Query is used everywhere in place of url.Values.
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// NewQuery creates an empty Query.
func NewQuery() *Query {
	return &Query{}
}

// Set stores a string value for key. Setting a key that is already present
// replaces its value in place, keeping the original position.
func (q *Query) Set(key, value string) *Query {
	for i := range q.pairs {
		if q.pairs[i].key == key {
			q.pairs[i].value = value

			return q
		}
	}

	q.pairs = append(q.pairs, queryPair{key: key, value: value})

	return q
}

// SetInt stores an integer value for key, stringified verbatim.
func (q *Query) SetInt(key string, value int) *Query {
	return q.Set(key, strconv.Itoa(value))
}

// SetBool stores a boolean value for key as "true" or "false".
func (q *Query) SetBool(key string, value bool) *Query {
	return q.Set(key, strconv.FormatBool(value))
}

// Get returns the value stored for key, or "" if absent.
func (q *Query) Get(key string) string {
	if q == nil {
		return ""
	}

	for _, pair := range q.pairs {
		if pair.key == key {
			return pair.value
		}
	}

	return ""
}

// Len returns the number of pairs, including empty-valued ones.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}

	return len(q.pairs)
}

// Encode serializes the query as a "?"-prefixed, "&"-joined sequence of
// percent-encoded key=value pairs, in insertion order. Empty-valued pairs are
// omitted; if nothing remains the result is the empty string. Encode is total
// and never fails.
func (q *Query) Encode() string {
	if q == nil || len(q.pairs) == 0 {
		return ""
	}

	var builder strings.Builder

	for _, pair := range q.pairs {
		if pair.value == "" {
			continue
		}

		if builder.Len() == 0 {
			builder.WriteByte('?')
		} else {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String()
}
