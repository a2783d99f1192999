package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+name, raw)
	}
	return uint(id), nil
}

// ParseBoolQuery parses an optional boolean query parameter, returning nil
// when the parameter is absent.
func ParseBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+name, raw)
	}
	return &v, nil
}
