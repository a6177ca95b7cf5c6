package pkg

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID parses the :id path parameter as a positive integer primary key.
func ParseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}
