package mediastore

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"campus-activity-system/config"
	"campus-activity-system/tools"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// MediaStore 活动图片对象存储
// 图片按 activities/<category>/<活动文件夹>/<文件名> 的约定存放，
// 一个活动的所有图片位于同一文件夹下，删除活动时整个文件夹一起清理
type MediaStore struct {
	client   *s3.Client
	uploader *manager.Uploader

	Bucket       string
	BaseURL      string
	Endpoint     string
	Prefix       string
	UsePathStyle bool
}

var instance *MediaStore

// Init 由 server.Init 调用，构造全局 MediaStore 实例
func Init() {
	cfg := config.Get().S3

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	tools.PanicOnErr(err)

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	instance = &MediaStore{
		client:       client,
		uploader:     manager.NewUploader(client),
		Bucket:       cfg.Bucket,
		BaseURL:      cfg.BaseURL,
		Endpoint:     cfg.Endpoint,
		Prefix:       cfg.Prefix,
		UsePathStyle: cfg.UsePathStyle,
	}
}

// Get 获取全局 MediaStore 实例
func Get() *MediaStore {
	if instance == nil {
		panic("mediastore 未初始化")
	}
	return instance
}

// ActivityImageKey 构造活动图片的对象 key
// 文件夹名和文件名都带 uuid 后缀，避免同名活动/文件互相覆盖
func (ms *MediaStore) ActivityImageKey(category, activityTitle, filename string) string {
	key := path.Join(
		"activities",
		category,
		tools.UniqueActivityFolder(activityTitle),
		tools.UniqueFileName(filename),
	)
	if ms.Prefix != "" {
		key = path.Join(strings.Trim(ms.Prefix, "/"), key)
	}
	return strings.TrimLeft(key, "/")
}

// UploadActivityImage 上传活动图片，返回可公开访问的 URL
func (ms *MediaStore) UploadActivityImage(ctx context.Context, category, activityTitle string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := ms.ActivityImageKey(category, activityTitle, fileHeader.Filename)
	_, err = ms.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return ms.PublicURL(key), nil
}

// PublicURL 由对象 key 构造公开访问 URL
func (ms *MediaStore) PublicURL(key string) string {
	base := strings.TrimRight(ms.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(ms.Endpoint, "/")
	}
	if ms.UsePathStyle {
		return base + "/" + ms.Bucket + "/" + key
	}
	return base + "/" + key
}

// KeyFromPublicURL 从公开 URL 还原对象 key
func (ms *MediaStore) KeyFromPublicURL(publicURL string) (string, error) {
	trimmed := publicURL
	if i := strings.Index(trimmed, "?"); i >= 0 {
		trimmed = trimmed[:i]
	}

	base := strings.TrimRight(ms.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(ms.Endpoint, "/")
	}
	if ms.UsePathStyle {
		base = base + "/" + ms.Bucket
	}

	if !strings.HasPrefix(trimmed, base+"/") {
		return "", fmt.Errorf("无法从 URL 解析对象 key: %s", publicURL)
	}
	key := strings.TrimLeft(strings.TrimPrefix(trimmed, base), "/")
	if key == "" {
		return "", fmt.Errorf("无法从 URL 解析对象 key: %s", publicURL)
	}
	return key, nil
}

// MoveActivityImage 将活动图片移动到新分类目录下，返回新的公开 URL
// 路径约定 activities/<category>/<活动文件夹>/<文件名>，仅替换 category 一级
func (ms *MediaStore) MoveActivityImage(ctx context.Context, publicURL, newCategory string) (string, error) {
	oldKey, err := ms.KeyFromPublicURL(publicURL)
	if err != nil {
		return "", err
	}

	parts := strings.Split(oldKey, "/")
	if len(parts) < 4 {
		return "", fmt.Errorf("对象 key 不符合活动图片路径约定: %s", oldKey)
	}
	// .../activities/<category>/<folder>/<file>
	parts[len(parts)-3] = newCategory
	newKey := strings.Join(parts, "/")
	if newKey == oldKey {
		return ms.PublicURL(oldKey), nil
	}

	_, err = ms.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(ms.Bucket),
		CopySource: aws.String(ms.Bucket + "/" + oldKey),
		Key:        aws.String(newKey),
	})
	if err != nil {
		return "", err
	}

	_, err = ms.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(oldKey),
	})
	if err != nil {
		return "", err
	}
	return ms.PublicURL(newKey), nil
}

// RemoveActivityFolder 删除活动图片所在的整个文件夹
// publicURL 为文件夹中任意一个文件的公开 URL
func (ms *MediaStore) RemoveActivityFolder(ctx context.Context, publicURL string) error {
	key, err := ms.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	folder := path.Dir(key) + "/"

	var ids []types.ObjectIdentifier
	paginator := s3.NewListObjectsV2Paginator(ms.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(ms.Bucket),
		Prefix: aws.String(folder),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}
	}
	if len(ids) == 0 {
		return nil
	}

	_, err = ms.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(ms.Bucket),
		Delete: &types.Delete{
			Objects: ids,
			Quiet:   aws.Bool(true),
		},
	})
	return err
}
