package archive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func newTestClient(searchURL, metadataURL string) *Client {
	return &Client{
		httpClient:  resty.New().SetTimeout(5 * time.Second),
		searchURL:   searchURL,
		metadataURL: metadataURL,
		downloadURL: "https://archive.org/download",
	}
}

func TestSearchItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "downloads desc", r.URL.Query().Get("sort[]"))
		assert.Equal(t, "json", r.URL.Query().Get("output"))
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"docs":[
			{"identifier":"col-a","title":"Colección A","downloads":9000,"collection":["software"]},
			{"identifier":"col-b","title":"","downloads":100,"collection":["software"]}
		]}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	items, err := client.SearchItems(context.Background(), `title:(mario)`, 20)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Colección A", items[0].Title)
	assert.Equal(t, int64(9000), items[0].Downloads)
	// 缺标题时回退到标识符
	assert.Equal(t, "col-b", items[1].Title)
}

func TestSearchItemsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.SearchItems(context.Background(), "q", 20)
	assert.Error(t, err)
}

func TestFetchFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/col-a", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":[
			{"name":"game(Es).iso","size":"734003200","format":"ISO Image"},
			{"name":"readme.txt","size":"1024","format":"Text"}
		]}`))
	}))
	defer srv.Close()

	client := newTestClient("", srv.URL)
	files, err := client.FetchFiles(context.Background(), "col-a")
	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, "game(Es).iso", files[0].Name)
	assert.Equal(t, "734003200", files[0].Size)
}

func TestDirectLink(t *testing.T) {
	client := newTestClient("", "")
	link := client.DirectLink("col-a", "game (Es).iso")
	assert.Equal(t, "https://archive.org/download/col-a/game%20%28Es%29.iso", link)
}
