package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Usecases speak gRPC status codes; the HTTP edge translates them.
func abortWithError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, domain.ErrMerchantNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.InvalidArgument:
			c.JSON(http.StatusBadRequest, gin.H{"error": st.Message()})
			return
		case codes.NotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": st.Message()})
			return
		case codes.FailedPrecondition:
			c.JSON(http.StatusConflict, gin.H{"error": st.Message()})
			return
		case codes.AlreadyExists:
			c.JSON(http.StatusConflict, gin.H{"error": st.Message()})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
