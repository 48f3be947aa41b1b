package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"stockdash/internal/chartexport"
	"stockdash/internal/domain"
	"stockdash/internal/schema"
)

type chartRequest struct {
	Snapshots []schema.Snapshot `json:"snapshots"`
	Title     string            `json:"title"`
}

func (m ApiHandler) chart(c *gin.Context) {
	var requestBody chartRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()), c)
		return
	}

	snapshots, err := schema.ParseSnapshots(requestBody.Snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	title := requestBody.Title
	if title == "" {
		title = "portfolio vs benchmark"
	}

	png, err := chartexport.RenderValueChart(snapshots, title)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Data(200, "image/png", png)
}
