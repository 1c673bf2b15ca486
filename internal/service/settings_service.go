package service

import (
	"RomXD/internal/model"
	"RomXD/internal/pkg/consts"
	"RomXD/internal/pkg/redis"
	"RomXD/internal/repository"
	"context"
	log "log/slog"
	"regexp"
	"strings"
)

// archiveDetailsPattern 从归档站条目链接里提取集合标识
var archiveDetailsPattern = regexp.MustCompile(`archive\.org/details/([^/?#]+)`)

type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, settings *model.Settings) error
	AddTrustedCollection(ctx context.Context, input string) (*model.Settings, error)
	RemoveTrustedCollection(ctx context.Context, identifier string) (*model.Settings, error)
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepo
}

func NewSettingsService(settingsRepo repository.SettingsRepo) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return settings, nil
}

// Update 整体覆盖站点设置
func (s *settingsServiceImpl) Update(ctx context.Context, settings *model.Settings) error {
	if settings == nil {
		return ErrParamInvalid
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		log.ErrorContext(ctx, "站点设置写入失败", "error", err)
		return mapStoreErr(err)
	}
	return nil
}

// AddTrustedCollection 登记可信集合，入参可以是裸标识或条目链接
func (s *settingsServiceImpl) AddTrustedCollection(ctx context.Context, input string) (*model.Settings, error) {
	identifier := ExtractArchiveID(input)
	if identifier == "" {
		return nil, ErrParamInvalid
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	for _, existing := range settings.TrustedCollections {
		if existing == identifier {
			return settings, nil
		}
	}
	settings.TrustedCollections = append(settings.TrustedCollections, identifier)

	if err = s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, mapStoreErr(err)
	}
	return settings, nil
}

// RemoveTrustedCollection 注销可信集合，并清掉它缓存的文件清单
func (s *settingsServiceImpl) RemoveTrustedCollection(ctx context.Context, identifier string) (*model.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	kept := make([]string, 0, len(settings.TrustedCollections))
	for _, existing := range settings.TrustedCollections {
		if existing != identifier {
			kept = append(kept, existing)
		}
	}
	settings.TrustedCollections = kept

	if err = s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, mapStoreErr(err)
	}

	if err = redis.DeleteKey(ctx, consts.ArchiveFilesKey+identifier); err != nil {
		log.WarnContext(ctx, "集合清单缓存清理失败", "identifier", identifier, "error", err)
	}
	return settings, nil
}

// ExtractArchiveID 解析集合标识，链接取 details 段，裸标识原样返回
func ExtractArchiveID(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if match := archiveDetailsPattern.FindStringSubmatch(input); len(match) > 1 {
		return match[1]
	}
	if strings.Contains(input, "/") {
		return ""
	}
	return input
}
