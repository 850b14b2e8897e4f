package tools

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// 对象存储路径中文件夹/文件名的最大长度
const maxSlugLength = 128

var (
	spaceRe  = regexp.MustCompile(`\s+`)
	illegalRe = regexp.MustCompile(`[^a-z0-9\-]`)
	hyphenRe = regexp.MustCompile(`-{2,}`)
)

// SanitizeName 将名称转为小写、空格转连字符并去除特殊字符，
// 用于构造对象存储中安全的路径片段
func SanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = spaceRe.ReplaceAllString(name, "-")
	name = illegalRe.ReplaceAllString(name, "")
	name = strings.Trim(hyphenRe.ReplaceAllString(name, "-"), "-")
	if len(name) > maxSlugLength {
		name = name[:maxSlugLength]
	}
	return name
}

// UniqueActivityFolder 生成活动图片文件夹名：<slug>_<uuid>
func UniqueActivityFolder(name string) string {
	return SanitizeName(name) + "_" + uuid.NewString()
}

// UniqueFileName 生成唯一文件名：<slug>_<uuid>.<ext>，扩展名保留原文件的
func UniqueFileName(name string) string {
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		ext = strings.ToLower(name[i+1:])
		name = name[:i]
	}
	cleaned := SanitizeName(name) + "_" + uuid.NewString()
	if ext == "" {
		return cleaned
	}
	return cleaned + "." + ext
}
