package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/multitool_api/internal/utils"
)

func logError(c *gin.Context, err error, msg string) {
	log.Error().
		Err(err).
		Str("request_id", utils.RequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg(msg)
}
