package storage

import "context"

// ObjectStorage captures the minimal operation the converter needs: putting
// a produced backup document somewhere an operator can fetch it.
type ObjectStorage interface {
	UploadObject(ctx context.Context, key string, data []byte) error
}
