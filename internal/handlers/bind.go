package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindStrictJSON decodes the request body rejecting unknown fields, so
// clients cannot smuggle server-controlled columns (id, userId,
// createdAt, updatedAt) into a write payload, then runs the usual
// binding validation.
func bindStrictJSON(c *gin.Context, obj interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
