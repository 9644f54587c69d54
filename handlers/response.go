package handlers

import (
	"net/http"

	"homecook-api/errs"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, data, count?} on
// the happy path, {success:false, message} on failure.

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func respondErr(c *gin.Context, err error) {
	message := err.Error()
	status := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		message = "Server error"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
