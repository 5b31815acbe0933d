package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternalServer     = "Internal server error"
	MsgInvalidPayload     = "Invalid request payload"
	MsgCredentialsMissing = "Username and password are required"
	MsgUsernameExists     = "Username already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgFeedbackMissing    = "Player ID and comment are required"
	MsgUserCreated        = "User created successfully"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// Internal answers with the generic 500 body. The cause stays in the server log.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternalServer)
}
