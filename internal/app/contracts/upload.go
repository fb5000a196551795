package contracts

import (
	"context"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/dto/requests"
	"io"
)

// FileHandle is a file picked for upload. Size must be known before Open.
type FileHandle interface {
	Name() string
	ContentType() string
	Size() int64
	Open(ctx context.Context) (io.ReadCloser, error)
}

// ProgressFunc receives the batch percentage, 0 to 100, never decreasing.
type ProgressFunc func(percent int)

type UploadPipeline interface {
	Upload(ctx context.Context, files []FileHandle, onProgress ProgressFunc) ([]models.UploadResult, error)
	Progress() (int, bool)
}

// FileResolver turns a file reference from the shell into a FileHandle. A
// reference that cannot be read still yields a handle whose Open fails, so
// the failure surfaces as that file's result entry.
type FileResolver interface {
	Resolve(ctx context.Context, ref requests.UploadFileRef) FileHandle
}
