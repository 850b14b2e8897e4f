package tools

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"小写转换", "Spring Festival", "spring-festival"},
		{"连续空格合并", "a   b", "a-b"},
		{"去除特殊字符", "C++ 编程入门!", "c"},
		{"首尾空白", "  hello  ", "hello"},
		{"连续连字符合并", "a--b---c", "a-b-c"},
		{"纯特殊字符", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeName_Truncation(t *testing.T) {
	long := strings.Repeat("a", 300)
	assert.Len(t, SanitizeName(long), maxSlugLength)
}

func TestUniqueActivityFolder(t *testing.T) {
	folder := UniqueActivityFolder("Spring Festival")
	parts := strings.SplitN(folder, "_", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "spring-festival", parts[0])
	_, err := uuid.Parse(parts[1])
	assert.NoError(t, err)

	// 同名活动生成的文件夹互不相同
	assert.NotEqual(t, folder, UniqueActivityFolder("Spring Festival"))
}

func TestUniqueFileName(t *testing.T) {
	name := UniqueFileName("Poster Final.PNG")
	assert.True(t, strings.HasPrefix(name, "poster-final_"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	// 无扩展名时不补点号
	noExt := UniqueFileName("poster")
	assert.False(t, strings.Contains(noExt, "."))
}
