package models

import "time"

// MediaAsset is an uploaded file. StorageKey locates the object in the
// bucket; URL is what front-ends render.
type MediaAsset struct {
	ID         string    `json:"id"`
	StorageKey string    `json:"storageKey"`
	URL        string    `json:"url"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	AltText    string    `json:"altText"`
	SizeBytes  int64     `json:"sizeBytes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MediaAssetPatch struct {
	URL       *string `json:"url"`
	FileName  *string `json:"fileName"`
	MimeType  *string `json:"mimeType"`
	AltText   *string `json:"altText"`
	SizeBytes *int64  `json:"sizeBytes"`
}

// UploadTicket lets a client PUT a file straight into object storage.
type UploadTicket struct {
	StorageKey string    `json:"storageKey"`
	UploadURL  string    `json:"uploadUrl"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
