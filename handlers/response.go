package handlers

import (
	"net/http"

	"stayhub/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail answers a JSON endpoint with HTTP 200 and {success:false, message}.
// Only ServiceError messages reach the client; anything else is logged and
// replaced by fallback.
func fail(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	if services.KindOf(err) == "" || services.KindOf(err) == services.KindUpstream {
		logger.Error(fallback,
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "message": services.MessageOf(err, fallback)})
}

func failMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}
