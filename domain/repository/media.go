package repository

import (
	"context"

	"vidtube/domain/model"
)

// IMediaStorage is the external media host. Upload returns nil when the host
// produced no usable asset; callers must treat that as a failed upload.
type IMediaStorage interface {
	Upload(ctx context.Context, localPath string) (*model.UploadedAsset, error)
	Delete(ctx context.Context, assetURL string) error
}
