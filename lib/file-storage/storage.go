package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"hr-attendance-backend/config"
)

type Provider interface {
	UploadSelfie(ctx context.Context, orgID string, fileReader io.Reader, fileSize int64) (key string, err error)
	GetFile(ctx context.Context, orgID, key string) ([]byte, error)
	MakeOrgBucket(ctx context.Context, orgID string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadSelfie(ctx context.Context, orgID string, fileReader io.Reader, fileSize int64) (string, error) {
	key := fmt.Sprintf("selfie/%s", uuid.NewString())
	_, err := i.s3client.PutObject(ctx, i.getOrgBucketName(orgID), key, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (i impl) GetFile(ctx context.Context, orgID, key string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.getOrgBucketName(orgID), key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, obj)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i impl) MakeOrgBucket(ctx context.Context, orgID string) error {
	bucketName := i.getOrgBucketName(orgID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) getOrgBucketName(orgID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, orgID)
}
