package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"docvault/internal/config"
)

func TestNewMinIO_Config(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"}

	cases := map[string]struct {
		mutate func(*config.MinIOConfig)
		want   error
	}{
		"no endpoint":   {func(c *config.MinIOConfig) { c.Endpoint = "" }, ErrEndpointRequired},
		"no access key": {func(c *config.MinIOConfig) { c.AccessKey = "" }, ErrCredentialsRequired},
		"no secret key": {func(c *config.MinIOConfig) { c.SecretKey = "" }, ErrCredentialsRequired},
		"no bucket":     {func(c *config.MinIOConfig) { c.Bucket = "" }, ErrBucketRequired},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			s, err := NewMinIO(context.Background(), cfg)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, s)
		})
	}

	assert.NoError(t, checkConfig(valid))
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	missing := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	assert.ErrorIs(t, translateError(missing), ErrNotExist)

	denied := minio.ErrorResponse{Code: "AccessDenied"}
	err := translateError(denied)
	assert.False(t, errors.Is(err, ErrNotExist))
	assert.Equal(t, denied, err)
}

func TestInfoFromStat(t *testing.T) {
	mod := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	info := infoFromStat("documents/invoice/42/scan/a.pdf", minio.ObjectInfo{
		Size:         12,
		ETag:         "abc",
		ContentType:  "application/pdf",
		LastModified: mod,
		UserMetadata: map[string]string{"original-filename": "a.pdf"},
	})

	assert.Equal(t, "documents/invoice/42/scan/a.pdf", info.Key)
	assert.Equal(t, int64(12), info.Size)
	assert.Equal(t, "application/pdf", info.ContentType)
	assert.Equal(t, mod, info.LastModified)
	assert.Equal(t, "a.pdf", info.Metadata["original-filename"])
}
