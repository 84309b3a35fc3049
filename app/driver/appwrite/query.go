package appwrite

import (
	"github.com/appwrite/sdk-for-go/query"
)

// QueryEqual builds a serialized equality query
func QueryEqual(attribute string, values ...interface{}) string {
	if len(values) == 1 {
		return query.Equal(attribute, values[0])
	}
	return query.Equal(attribute, values)
}

// QueryLimit builds a serialized limit query
func QueryLimit(limit int) string {
	return query.Limit(limit)
}
