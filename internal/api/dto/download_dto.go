package dto

// DownloadRevealDTO 下载中转页返回：真实地址与揭示前的固定等待秒数
type DownloadRevealDTO struct {
	Target string `json:"target"`
	Delay  int    `json:"delay"`
}
