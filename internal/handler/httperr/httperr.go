// Package httperr renders usecase failures as the flat error body the
// API exposes. Handlers translate sentinels such as
// commands.ErrProductNotFound, commands.ErrInvalidTransition or
// queries.ErrOrderNotFound into a status plus a public message here;
// the original error is kept on the gin error stack for the logging
// middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
