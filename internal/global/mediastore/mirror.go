package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"campus-activity-system/internal/global/httpclient"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MirrorExternalImage 将外部图片 URL 拉取后转存到本系统的存储桶内，
// 使活动图片统一遵循 activities/<category>/<文件夹>/<文件> 的路径约定
// 返回转存后的公开 URL
func (ms *MediaStore) MirrorExternalImage(ctx context.Context, category, activityTitle, srcURL string) (string, error) {
	resp, err := httpclient.Client.R().SetContext(ctx).Get(srcURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("拉取外部图片失败: %s 返回 %d", srcURL, resp.StatusCode())
	}

	filename := path.Base(strings.SplitN(srcURL, "?", 2)[0])
	key := ms.ActivityImageKey(category, activityTitle, filename)

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = ms.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(resp.Body()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return ms.PublicURL(key), nil
}
