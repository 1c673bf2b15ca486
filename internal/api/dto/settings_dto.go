package dto

// TrustedCollectionDTO 登记可信集合的入参，接受裸标识或条目链接
type TrustedCollectionDTO struct {
	Input string `json:"input" binding:"required"`
}
