package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	start, end, err := parseTimeRange("2024-03-01T09:00:00Z", "2024-03-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, start.Location())
	assert.True(t, end.After(start))

	// 结束不晚于开始
	_, _, err = parseTimeRange("2024-03-01T12:00:00Z", "2024-03-01T09:00:00Z")
	assert.Error(t, err)
	_, _, err = parseTimeRange("2024-03-01T09:00:00Z", "2024-03-01T09:00:00Z")
	assert.Error(t, err)

	// 非 RFC3339 格式
	_, _, err = parseTimeRange("2024-03-01", "2024-03-02T00:00:00Z")
	assert.Error(t, err)
}

func TestParseContactInfo(t *testing.T) {
	info, err := parseContactInfo(`{"wechat":"club_2024","phone":"123456"}`)
	require.NoError(t, err)
	assert.Equal(t, "club_2024", info["wechat"])

	// 空对象视为无效
	_, err = parseContactInfo(`{}`)
	assert.Error(t, err)

	// 非法 JSON
	_, err = parseContactInfo(`not-json`)
	assert.Error(t, err)

	// JSON 数组不是对象
	_, err = parseContactInfo(`["a"]`)
	assert.Error(t, err)
}
