package handler

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDownloadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/download/reveal", NewDownloadHandler().Reveal)
	return r
}

func TestRevealReturnsTargetAndDelay(t *testing.T) {
	target := "https://archive.org/download/col-a/game%20(Es).iso"
	data := base64.StdEncoding.EncodeToString([]byte(target))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/download/reveal?data="+url.QueryEscape(data), nil)
	newDownloadRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))

	var body struct {
		Code int `json:"code"`
		Data struct {
			Target string `json:"target"`
			Delay  int    `json:"delay"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 200, body.Code)
	assert.Equal(t, target, body.Data.Target)
	assert.Equal(t, 30, body.Data.Delay)
}

func TestRevealRejectsInvalidData(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/download/reveal?data=%25%25garbage", nil)
	newDownloadRouter().ServeHTTP(w, req)

	var body struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 400, body.Code)
}
