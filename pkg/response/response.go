package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"ok"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"invalid input"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: true, Message: msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Success: false, Message: msg})
}

// Abort writes an error body and stops the handler chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: msg})
}
