package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body. An empty body decodes to the zero value
// so that field validation reports what is missing.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
