package scan

import (
	"context"
	"io"
)

// PutInput carries one image payload to object storage. Body is streamed,
// never buffered by the caller.
type PutInput struct {
	Key         string
	ContentType string
	Body        io.Reader
	Size        int64
}

// ObjectStorage stores raw image bytes and returns a durable public URL.
type ObjectStorage interface {
	Put(ctx context.Context, in PutInput) (string, error)
}
