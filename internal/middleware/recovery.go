package middleware

import (
	"seatwatch-srv/pkg/discord"
	"seatwatch-srv/pkg/log"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses and ships a bug report to
// the ops webhook.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
