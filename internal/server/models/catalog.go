package models

import "time"

type Technology struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	IconID   *string     `json:"iconId"`
	Icon     *MediaAsset `json:"icon,omitempty"`
	Skill    *Skill      `json:"skill,omitempty"`
}

type TechnologyPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	IconID   *string `json:"iconId"`
}

type Skill struct {
	TechnologyID    string `json:"techId"`
	Proficiency     int    `json:"proficiency"`
	YearsExperience int    `json:"yearsExperience"`
}

type SkillPatch struct {
	Proficiency     *int `json:"proficiency"`
	YearsExperience *int `json:"yearsExperience"`
}

// Service is an offering listed on the portfolio with its tech stack.
type Service struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	IconID      *string      `json:"iconId"`
	Icon        *MediaAsset  `json:"icon,omitempty"`
	TechStack   []Technology `json:"techStack"`
}

type ServicePatch struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	IconID      *string `json:"iconId"`
}

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageContent is a keyed text block of a site page with an ordered gallery.
type PageContent struct {
	ID          string         `json:"id"`
	Page        string         `json:"page"`
	Section     string         `json:"section"`
	Key         string         `json:"key"`
	Title       string         `json:"title"`
	Value       string         `json:"value"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Images      []ContentImage `json:"images"`
}

type ContentImage struct {
	MediaID      string     `json:"mediaId"`
	DisplayOrder int        `json:"displayOrder"`
	Media        MediaAsset `json:"media"`
}
