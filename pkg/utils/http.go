package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var ErrEmptyParameter = errors.New("empty parameter")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := strings.TrimSpace(c.Query(param))
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	valUint64, err := strconv.ParseUint(valStr, 10, 64)
	return uint(valUint64), err
}

// QueryUintPtr returns nil when the query parameter is absent or malformed.
func QueryUintPtr(c *gin.Context, param string) *uint {
	v, err := ParseQueryUintParam(c, param)
	if err != nil {
		return nil
	}
	return &v
}
