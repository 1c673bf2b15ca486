package es

import (
	"RomXD/internal/pkg/util"
	"context"
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type GameRepo interface {
	SearchGames(ctx context.Context, queryText string, from, size int) ([]*GameES, error)
	SearchByFilter(ctx context.Context, platform, genre, gameType string, from, size int) ([]*GameES, error)
	IndexGame(ctx context.Context, game *GameES) error
	DeleteGame(ctx context.Context, id string) error
}

type GameRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewGameRepo(client *elasticsearch.TypedClient) GameRepo {
	return &GameRepoImpl{client: client}
}

// SearchGames 全文检索，标题权重最高并容忍拼写误差
func (s *GameRepoImpl) SearchGames(ctx context.Context, queryText string, from, size int) ([]*GameES, error) {
	if from >= MaxSearchDepth {
		return []*GameES{}, nil
	}

	req := s.client.Search().Index(GameIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Should: []types.Query{
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:  queryText,
							Fields: []string{"title^3", "description^1", "genre^2", "platform^2", "developer^1"},
							Boost:  util.PtrFloat32(2.0),
						},
					},
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:     queryText,
							Fields:    []string{"title", "description"},
							Fuzziness: util.PtrStr("AUTO"),
							Boost:     util.PtrFloat32(0.5),
						},
					},
				},
			},
		}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

// SearchByFilter 按平台/类型/载体过滤，新条目排前
func (s *GameRepoImpl) SearchByFilter(ctx context.Context, platform, genre, gameType string, from, size int) ([]*GameES, error) {
	filters := make([]types.Query, 0, 3)
	if platform != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{"platform": {Value: platform}},
		})
	}
	if genre != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{"genre": {Value: genre}},
		})
	}
	if gameType != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{"type": {Value: gameType}},
		})
	}

	req := s.client.Search().Index(GameIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{Filter: filters},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

func (s *GameRepoImpl) IndexGame(ctx context.Context, game *GameES) error {
	_, err := s.client.Index(GameIndex).
		Id(game.ID).
		Document(game).
		Do(ctx)
	return err
}

func (s *GameRepoImpl) DeleteGame(ctx context.Context, id string) error {
	_, err := s.client.Delete(GameIndex, id).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}
	return nil
}

func (s *GameRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*GameES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*GameES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var game GameES
		if err = json.Unmarshal(hit.Source_, &game); err != nil {
			continue
		}
		results = append(results, &game)
	}
	return results, nil
}
