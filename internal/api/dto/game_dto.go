package dto

import "RomXD/internal/model"

// GameBaseDTO 管理端创建/更新游戏的入参
type GameBaseDTO struct {
	Slug             string                   `json:"slug"`
	Title            string                   `json:"title" binding:"required" validate:"min=1,max=255"`
	ShortDescription string                   `json:"shortDescription" validate:"max=500"`
	FullDescription  string                   `json:"fullDescription"`
	CoverImage       string                   `json:"coverImage"`
	HeroImage        string                   `json:"heroImage"`
	Screenshots      []string                 `json:"screenshots" validate:"max=12"`
	Genre            []string                 `json:"genre"`
	Platform         []string                 `json:"platform"`
	ReleaseDate      string                   `json:"releaseDate"`
	Developer        string                   `json:"developer"`
	DownloadURL      string                   `json:"downloadUrl"`
	DownloadSize     string                   `json:"downloadSize"`
	Requirements     model.SystemRequirements `json:"requirements"`
	Type             string                   `json:"type" binding:"required,oneof=ISO ROM"`
	Region           string                   `json:"region"`
	Language         string                   `json:"language"`
}

// VoteDTO 投票入参
type VoteDTO struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}
