package handler

import "github.com/gin-gonic/gin"

// userIDHeader carries the caller's identity. Authentication itself happens
// upstream; the backend trusts the header as a pass-through.
const userIDHeader = "X-User-ID"

func userIDFromRequest(c *gin.Context) string {
	return c.GetHeader(userIDHeader)
}
