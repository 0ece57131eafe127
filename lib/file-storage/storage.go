package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const bucketLocation = "us-east-1"

var ErrNotConfigured = errors.New("S3 хранилище не настроено")

type Provider interface {
	PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error
	GetObject(ctx context.Context, objectKey string) ([]byte, error)
	RemoveObject(ctx context.Context, objectKey string) error
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client, bucketName string) {
	Instance = New(s3client, bucketName)
}

func New(s3client *minio.Client, bucketName string) Provider {
	return &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error {
	if i.s3client == nil {
		return ErrNotConfigured
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "ошибка загрузки файла %s в S3", objectKey)
	}
	return nil
}

func (i impl) GetObject(ctx context.Context, objectKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, ErrNotConfigured
	}
	object, err := i.s3client.GetObject(ctx, i.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения файла %s из S3", objectKey)
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения файла %s из S3", objectKey)
	}
	return data, nil
}

func (i impl) RemoveObject(ctx context.Context, objectKey string) error {
	if i.s3client == nil {
		return ErrNotConfigured
	}
	err := i.s3client.RemoveObject(ctx, i.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrapf(err, "ошибка удаления файла %s из S3", objectKey)
	}
	return nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	if i.s3client == nil {
		return ErrNotConfigured
	}
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: bucketLocation})
}
