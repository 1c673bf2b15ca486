package handler

import (
	"RomXD/internal/pkg/response"
	"RomXD/internal/service"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	archiveSvc service.ArchiveService
}

func NewArchiveHandler(archiveSvc service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{
		archiveSvc: archiveSvc,
	}
}

// Search 两段式归档检索，global=true 时跳过可信集合限定
func (s *ArchiveHandler) Search(c *gin.Context) {
	global := c.Query("global") == "true"

	items, err := s.archiveSvc.Search(c.Request.Context(), c.Query("q"), global)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// ListFiles 某集合过滤排序后的文件清单
func (s *ArchiveHandler) ListFiles(c *gin.Context) {
	files, err := s.archiveSvc.ListFiles(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, files)
}

// ResolveLink 由集合标识与文件名拼出直链
func (s *ArchiveHandler) ResolveLink(c *gin.Context) {
	identifier := c.Query("identifier")
	filename := c.Query("filename")
	if identifier == "" || filename == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	response.Success(c, gin.H{
		"url": s.archiveSvc.ResolveLink(identifier, filename),
	})
}
