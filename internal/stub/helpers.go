package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// detail answers with the single-message error shape, e.g.
// {"detail": "Not found."}.
func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

// fieldError answers with a field-level validation error, e.g.
// {"name": ["This field may not be blank."]}.
func fieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{field: []string{message}})
}

// bindJSON binds the request body into target and reports whether it
// succeeded. On failure the error response has already been written.
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		detail(c, http.StatusBadRequest, "invalid or un-parseable request body")
		return false
	}

	return true
}

// parseID parses the id path parameter. On failure the error response has
// already been written.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusNotFound, "Not found.")
		return 0, false
	}

	return id, true
}
