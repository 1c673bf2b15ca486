package archive

import "net/url"

// BuildDirectLink 拼出文件直链，文件名做百分号编码，标识符原样嵌入
func BuildDirectLink(baseURL, identifier, filename string) string {
	return baseURL + "/" + identifier + "/" + url.PathEscape(filename)
}
