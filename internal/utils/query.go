package utils

import "github.com/gin-gonic/gin"

// QueryID reads an optional numeric query parameter. Empty or malformed
// values yield nil so that they impose no constraint.
func QueryID(c *gin.Context, key string) *uint64 {
	id, err := ParseOptionalID(c.Query(key))
	if err != nil {
		return nil
	}
	return id
}

// QueryFlag reports whether a checkbox-style query parameter is switched on.
func QueryFlag(c *gin.Context, key string) bool {
	switch c.Query(key) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
