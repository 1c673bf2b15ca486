package dto

// CommentCreateDTO 提交评论的入参，parentId 为空表示发新楼
type CommentCreateDTO struct {
	Author   string `json:"author" binding:"required" validate:"min=1,max=60"`
	Content  string `json:"content" binding:"required" validate:"min=1,max=2000"`
	ParentID string `json:"parentId"`
}
