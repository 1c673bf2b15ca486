package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	StoreForbidden      = 550
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrGameNotFound            = errors.New("游戏不存在")
	ErrSlugExist               = errors.New("slug 已被占用")
	ErrCommentNotFound         = errors.New("评论不存在")
	ErrCommentEmpty            = errors.New("昵称和内容不能为空")
	ErrCommentBadWords         = errors.New("评论包含不当用语")
	ErrCommentLinkSpam         = errors.New("评论包含过多链接")
	ErrVoteOutOfRange          = errors.New("评分必须在 1 到 5 之间")
	ErrRedirectDataInvalid     = errors.New("下载参数无法解析")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrPasswordIncorrect       = errors.New("邮箱或密码错误")
	ErrArchiveUnavailable      = errors.New("Internet Archive 暂时不可用")
	ErrStorePermission         = errors.New("数据库访问被拒绝，请检查后端安全规则配置")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrGameNotFound:            NotFound,
	ErrSlugExist:               BadRequest,
	ErrCommentNotFound:         NotFound,
	ErrCommentEmpty:            BadRequest,
	ErrCommentBadWords:         BadRequest,
	ErrCommentLinkSpam:         BadRequest,
	ErrVoteOutOfRange:          BadRequest,
	ErrRedirectDataInvalid:     BadRequest,
	ErrMissingLoginCredentials: Unauthorized,
	ErrPasswordIncorrect:       Unauthorized,
	ErrArchiveUnavailable:      InternalServerError,
	ErrStorePermission:         StoreForbidden,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}

// mongoUnauthorizedCode 服务端安全规则拒绝写入时返回的错误码
const mongoUnauthorizedCode = 13

// mapStoreErr 将底层存储错误翻译为业务错误。
// 权限类错误单独区分，提示运营方检查后端访问策略而不是当作瞬时故障。
func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == mongoUnauthorizedCode {
		return ErrStorePermission
	}
	return err
}

// RejectError 携带给用户看的拒绝理由（内容审核等场景）
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string {
	return e.Reason
}
