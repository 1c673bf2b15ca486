package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDownloadTargetValid(t *testing.T) {
	target := "https://archive.org/download/some-id/Game%20(Es).iso"
	data := base64.StdEncoding.EncodeToString([]byte(target))

	got, err := DecodeDownloadTarget(data)
	assert.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestDecodeDownloadTargetURLSafeEncoding(t *testing.T) {
	target := "http://mirror.example.com/files?a=1&b=2"
	data := base64.URLEncoding.EncodeToString([]byte(target))

	got, err := DecodeDownloadTarget(data)
	assert.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestDecodeDownloadTargetRejectsScheme(t *testing.T) {
	for _, target := range []string{
		"javascript:alert(1)",
		"ftp://example.com/file.iso",
		"file:///etc/passwd",
	} {
		data := base64.StdEncoding.EncodeToString([]byte(target))
		_, err := DecodeDownloadTarget(data)
		assert.ErrorIs(t, err, ErrRedirectDataInvalid, target)
	}
}

func TestDecodeDownloadTargetRejectsGarbage(t *testing.T) {
	_, err := DecodeDownloadTarget("")
	assert.ErrorIs(t, err, ErrRedirectDataInvalid)

	_, err = DecodeDownloadTarget("%%%no-es-base64%%%")
	assert.ErrorIs(t, err, ErrRedirectDataInvalid)

	// 可解码但不是绝对地址
	_, err = DecodeDownloadTarget(base64.StdEncoding.EncodeToString([]byte("/relative/path")))
	assert.ErrorIs(t, err, ErrRedirectDataInvalid)
}
