package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/library-manager/internal/model"
	"github.com/snnyvrz/library-manager/internal/service"
	"github.com/snnyvrz/library-manager/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// writeServiceError answers 404 for a *service.NotFoundError and 500 with the
// given code for anything else.
func writeServiceError(c *gin.Context, err error, code, message string) {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		writeError(c, http.StatusNotFound,
			strings.ToUpper(nf.Entity)+"_NOT_FOUND",
			nf.Error(),
		)
		return
	}

	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, code, message)
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseDateQuery accepts YYYY-MM-DD only and returns ok == false when the
// parameter is absent.
func parseDateQuery(c *gin.Context, key string) (t time.Time, ok bool, err error) {
	s, present := c.GetQuery(key)
	if !present || s == "" {
		return time.Time{}, false, nil
	}

	t, err = time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return model.DateOf(t), true, nil
}
