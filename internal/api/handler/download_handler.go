package handler

import (
	"RomXD/internal/api/dto"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"

	"github.com/gin-gonic/gin"
)

type DownloadHandler struct{}

func NewDownloadHandler() *DownloadHandler {
	return &DownloadHandler{}
}

// Reveal 下载中转：解码 data 参数得到真实地址，带固定等待秒数返回。
// 压 Referrer-Policy 头，出站跳转不携带来源。
func (s *DownloadHandler) Reveal(c *gin.Context) {
	target, err := service.DecodeDownloadTarget(c.Query("data"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Referrer-Policy", "no-referrer")
	response.Success(c, dto.DownloadRevealDTO{
		Target: target,
		Delay:  consts.DownloadRevealDelay,
	})
}
