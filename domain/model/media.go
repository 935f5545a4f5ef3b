package model

// UploadedAsset is what the media host returns for a stored file. Duration is
// only populated for video uploads.
type UploadedAsset struct {
	PublicID string  `json:"publicId"`
	URL      string  `json:"url"`
	Duration float64 `json:"duration,omitempty"`
}
