package archive

// Item Internet Archive 检索结果
// 深度搜索命中具体文件时，Title 为文件名，IsFileSearch 为 true。
type Item struct {
	Identifier   string   `json:"identifier"`
	Title        string   `json:"title"`
	Downloads    int64    `json:"downloads"`
	Collection   []string `json:"collection,omitempty"`
	IsFileSearch bool     `json:"isFileSearch,omitempty"`
	FileName     string   `json:"fileName,omitempty"`
	FileSize     string   `json:"fileSize,omitempty"`
}

// File 集合清单中的单个文件
type File struct {
	Name   string `json:"name"`
	Size   string `json:"size,omitempty"`
	Format string `json:"format,omitempty"`
}
