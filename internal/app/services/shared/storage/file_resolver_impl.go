package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"os"
	"path/filepath"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type objectClient interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

type fileResolver struct {
	MinioClient   objectClient
	DefaultBucket string
	Log           *zap.Logger
}

// NewFileResolver resolves local paths and, when minioClient is set, objects
// in an S3 compatible bucket.
func NewFileResolver(minioClient *minio.Client, defaultBucket string, logger *zap.Logger) contracts.FileResolver {
	resolver := &fileResolver{
		DefaultBucket: defaultBucket,
		Log:           logger,
	}
	if minioClient != nil {
		resolver.MinioClient = minioClient
	}
	return resolver
}

func (r *fileResolver) Resolve(ctx context.Context, ref requests.UploadFileRef) contracts.FileHandle {
	requestID := utils.RequestIDFromContext(ctx)

	if ref.Object != "" {
		bucket := ref.Bucket
		if bucket == "" {
			bucket = r.DefaultBucket
		}
		r.Log.Info("fileResolver.Resolve object reference",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucket),
			zap.String(constvars.LoggingObjectKey, ref.Object),
		)
		return r.resolveObject(ctx, bucket, ref.Object)
	}

	r.Log.Info("fileResolver.Resolve local path",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilenameKey, ref.Path),
	)
	return NewLocalFile(ref.Path)
}

func (r *fileResolver) resolveObject(ctx context.Context, bucket, object string) contracts.FileHandle {
	handle := &objectFile{
		Client: r.MinioClient,
		Bucket: bucket,
		Object: object,
	}

	if r.MinioClient == nil {
		handle.statErr = exceptions.ErrMinioStatObject(errors.New(constvars.ErrDevObjectStorageNotConfigured), bucket)
		return handle
	}

	info, err := r.MinioClient.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		handle.statErr = exceptions.ErrMinioStatObject(err, bucket)
		return handle
	}
	handle.size = info.Size
	handle.contentType = info.ContentType
	return handle
}

type localFile struct {
	path        string
	size        int64
	contentType string
	statErr     error
}

// NewLocalFile describes a file on local disk. A path that cannot be read is
// reported by Open.
func NewLocalFile(path string) contracts.FileHandle {
	file := &localFile{
		path:        path,
		contentType: contentTypeByName(path),
	}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		file.statErr = err
	case info.IsDir():
		file.statErr = errors.New(constvars.ErrDevUploadPathIsDirectory)
	default:
		file.size = info.Size()
	}
	return file
}

func (f *localFile) Name() string {
	return filepath.Base(f.path)
}

func (f *localFile) ContentType() string {
	return f.contentType
}

func (f *localFile) Size() int64 {
	return f.size
}

func (f *localFile) Open(ctx context.Context) (io.ReadCloser, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	return os.Open(f.path)
}

type objectFile struct {
	Client      objectClient
	Bucket      string
	Object      string
	size        int64
	contentType string
	statErr     error
}

func (f *objectFile) Name() string {
	return filepath.Base(f.Object)
}

func (f *objectFile) ContentType() string {
	if f.contentType != "" {
		return f.contentType
	}
	return contentTypeByName(f.Object)
}

func (f *objectFile) Size() int64 {
	return f.size
}

func (f *objectFile) Open(ctx context.Context) (io.ReadCloser, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	object, err := f.Client.GetObject(ctx, f.Bucket, f.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, f.Bucket)
	}
	return object, nil
}

func contentTypeByName(name string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		return contentType
	}
	return constvars.MIMEOctetStream
}
