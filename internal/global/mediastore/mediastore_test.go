package mediastore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityImageKey(t *testing.T) {
	ms := &MediaStore{}
	key := ms.ActivityImageKey("socials", "Spring Festival", "Poster.PNG")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 4)
	assert.Equal(t, "activities", parts[0])
	assert.Equal(t, "socials", parts[1])
	assert.True(t, strings.HasPrefix(parts[2], "spring-festival_"))
	assert.True(t, strings.HasPrefix(parts[3], "poster_"))
	assert.True(t, strings.HasSuffix(parts[3], ".png"))
}

func TestActivityImageKey_WithPrefix(t *testing.T) {
	ms := &MediaStore{Prefix: "/media/"}
	key := ms.ActivityImageKey("other", "t", "f.jpg")
	assert.True(t, strings.HasPrefix(key, "media/activities/other/"))
}

func TestPublicURLAndKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ms   *MediaStore
	}{
		{"虚拟主机式", &MediaStore{Bucket: "imgs", BaseURL: "https://cdn.example.com"}},
		{"路径式", &MediaStore{Bucket: "imgs", Endpoint: "http://minio:9000", UsePathStyle: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "activities/socials/spring_abc/poster_def.png"
			url := tt.ms.PublicURL(key)

			got, err := tt.ms.KeyFromPublicURL(url)
			require.NoError(t, err)
			assert.Equal(t, key, got)
		})
	}
}

func TestKeyFromPublicURL_StripsQuery(t *testing.T) {
	ms := &MediaStore{Bucket: "imgs", BaseURL: "https://cdn.example.com"}
	key, err := ms.KeyFromPublicURL("https://cdn.example.com/a/b/c.png?X-Amz-Signature=zzz")
	require.NoError(t, err)
	assert.Equal(t, "a/b/c.png", key)
}

func TestKeyFromPublicURL_ForeignURL(t *testing.T) {
	ms := &MediaStore{Bucket: "imgs", BaseURL: "https://cdn.example.com"}
	_, err := ms.KeyFromPublicURL("https://other.example.com/a.png")
	assert.Error(t, err)
}
