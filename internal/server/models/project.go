package models

import "time"

type Project struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Slug            string       `json:"slug"`
	Summary         string       `json:"summary"`
	Description     string       `json:"description"`
	MainThumbnailID *string      `json:"mainThumbnailId"`
	ViewCount       int64        `json:"viewCount"`
	IsFeatured      bool         `json:"isFeatured"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	Thumbnail       *MediaAsset  `json:"thumbnail,omitempty"`
	Technologies    []Technology `json:"techs,omitempty"`
}

type ProjectPatch struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Summary         *string `json:"summary"`
	Description     *string `json:"description"`
	MainThumbnailID *string `json:"mainThumbnailId"`
	IsFeatured      *bool   `json:"isFeatured"`
}

// ProjectDetails is a project with all of its owned collections.
type ProjectDetails struct {
	Project
	Links    []ProjectLink    `json:"links"`
	Sections []ProjectSection `json:"sections"`
	Timeline []TimelineEntry  `json:"timeline"`
}

type ProjectLink struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	Position  int    `json:"position"`
}

type ProjectLinkPatch struct {
	Label    *string `json:"label"`
	URL      *string `json:"url"`
	Position *int    `json:"position"`
}

type ProjectSection struct {
	ID        string      `json:"id"`
	ProjectID string      `json:"projectId"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	MediaID   *string     `json:"mediaId"`
	Order     int         `json:"order"`
	Media     *MediaAsset `json:"media,omitempty"`
}

type ProjectSectionPatch struct {
	Title   *string `json:"title"`
	Body    *string `json:"body"`
	MediaID *string `json:"mediaId"`
	Order   *int    `json:"order"`
}

// SectionOrder is one entry of a reorder request.
type SectionOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type TimelineEntry struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type TimelineEntryPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}
