package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"economia/src/app/http/response"
	"economia/src/app/http/validation"
	"economia/src/app/middleware"
)

const invalidBody = "Corpo da requisição inválido"

// bindFailed writes the 400 for a binding error. Rule violations carry the
// offending field; anything else (malformed JSON, wrong types) is a plain bad
// request with badMessage.
func bindFailed(c *gin.Context, err error, requiredMessage, badMessage string) {
	_ = c.Error(err)
	reqID := middleware.GetRequestID(c)
	if fe, ok := validation.Describe(err, requiredMessage); ok {
		response.ValidationError(c, fe.Field, fe.Message, reqID)
		return
	}
	response.BadRequest(c, badMessage, reqID)
}

// fail writes the response for a use case error.
func fail(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	response.FromDomainError(c, err, fallback, middleware.GetRequestID(c))
}

// bindQuery binds the query string into obj. A key sent without a value
// (limit=) counts as omitted so the form default applies.
func bindQuery(c *gin.Context, obj any) error {
	values := c.Request.URL.Query()
	for key, vs := range values {
		if len(vs) == 1 && vs[0] == "" {
			delete(values, key)
		}
	}
	if err := binding.MapFormWithTag(obj, values, "form"); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
