package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getRun(c *gin.Context) {
	runId, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	result, ok := m.RunCache.GetByID(runId)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("run %s not found", runId), c, 404)
		return
	}

	c.JSON(200, runResultToJson(result, true))
}
