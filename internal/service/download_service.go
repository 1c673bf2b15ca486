package service

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// DecodeDownloadTarget 解析下载中转参数：base64 解码出真实目标地址。
// 仅放行 http/https 绝对地址，解不开或协议不对都按参数非法处理。
func DecodeDownloadTarget(data string) (string, error) {
	if strings.TrimSpace(data) == "" {
		return "", ErrRedirectDataInvalid
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(data)
		if err != nil {
			return "", ErrRedirectDataInvalid
		}
	}

	target := strings.TrimSpace(string(raw))
	parsed, err := url.Parse(target)
	if err != nil {
		return "", ErrRedirectDataInvalid
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", ErrRedirectDataInvalid
	}
	if parsed.Host == "" {
		return "", ErrRedirectDataInvalid
	}
	return target, nil
}
