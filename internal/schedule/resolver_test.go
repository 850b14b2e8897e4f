package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// 周一 09:00-10:30，有效期 2024-01-01 ~ 2024-05-31
func mondayMeeting() Meeting {
	return Meeting{
		ID:         "m-1",
		ClassID:    "c-1",
		ClassCode:  "CS101",
		ClassName:  "数据结构",
		Location:   "A-301",
		Section:    "1",
		Weekday:    1,
		StartTime:  "09:00:00",
		EndTime:    "10:30:00",
		ClassStart: date("2024-01-01"),
		ClassEnd:   date("2024-05-31"),
	}
}

func TestResolveDaily_WeekdayMatch(t *testing.T) {
	meetings := []Meeting{mondayMeeting()}

	// 2024-02-12 是周一
	got := ResolveDaily(meetings, nil, date("2024-02-12"))
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02-12", got[0].Date)
	assert.Equal(t, "m-1", got[0].MeetingID)
	assert.Equal(t, "09:00:00", got[0].StartTime)

	// 2024-02-13 是周二
	assert.Empty(t, ResolveDaily(meetings, nil, date("2024-02-13")))
}

func TestResolveDaily_CancellationAntiJoin(t *testing.T) {
	meetings := []Meeting{mondayMeeting()}
	cancellations := []Cancellation{{MeetingID: "m-1", Date: date("2024-02-05")}}

	// 被停课的那个周一为空
	assert.Empty(t, ResolveDaily(meetings, cancellations, date("2024-02-05")))

	// 下一个周一不受影响
	got := ResolveDaily(meetings, cancellations, date("2024-02-12"))
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02-12", got[0].Date)
}

func TestResolveDaily_DateRangeBoundary(t *testing.T) {
	m := mondayMeeting()
	m.ClassStart = date("2024-02-12")
	m.ClassEnd = date("2024-02-19")
	meetings := []Meeting{m}

	// 有效期首尾均为闭区间
	assert.Len(t, ResolveDaily(meetings, nil, date("2024-02-12")), 1)
	assert.Len(t, ResolveDaily(meetings, nil, date("2024-02-19")), 1)
	// 有效期外的周一不出现
	assert.Empty(t, ResolveDaily(meetings, nil, date("2024-02-05")))
	assert.Empty(t, ResolveDaily(meetings, nil, date("2024-02-26")))
}

func TestResolveDaily_Ordering(t *testing.T) {
	early := mondayMeeting()
	early.ID, early.ClassCode, early.StartTime = "m-early", "Z900", "08:00:00"
	sameTimeA := mondayMeeting()
	sameTimeA.ID, sameTimeA.ClassCode = "m-a", "A100"
	sameTimeB := mondayMeeting()
	sameTimeB.ID, sameTimeB.ClassCode = "m-b", "B200"

	got := ResolveDaily([]Meeting{sameTimeB, early, sameTimeA}, nil, date("2024-02-12"))
	require.Len(t, got, 3)
	// 按开始时间升序，相同时按课程代码升序
	assert.Equal(t, "m-early", got[0].MeetingID)
	assert.Equal(t, "m-a", got[1].MeetingID)
	assert.Equal(t, "m-b", got[2].MeetingID)
}

func TestResolveDaily_TimeOfDayIgnored(t *testing.T) {
	meetings := []Meeting{mondayMeeting()}
	cancellations := []Cancellation{
		// 带时分秒的停课时间也按日期粒度匹配
		{MeetingID: "m-1", Date: time.Date(2024, 2, 5, 23, 59, 59, 0, time.UTC)},
	}
	assert.Empty(t, ResolveDaily(meetings, cancellations, time.Date(2024, 2, 5, 8, 30, 0, 0, time.UTC)))
}

func TestMonthRange_YearRollover(t *testing.T) {
	start, next := MonthRange(date("2024-12-15"))
	assert.Equal(t, date("2024-12-01"), start)
	assert.Equal(t, date("2025-01-01"), next)
}

func TestResolveMonthly(t *testing.T) {
	meetings := []Meeting{mondayMeeting()}
	cancellations := []Cancellation{{MeetingID: "m-1", Date: date("2024-02-05")}}

	got := ResolveMonthly(meetings, cancellations, date("2024-02-20"))

	// 2024 年 2 月的周一：05(停) 12 19 26
	require.Len(t, got, 3)
	assert.Equal(t, "2024-02-12", got[0].Date)
	assert.Equal(t, "2024-02-19", got[1].Date)
	assert.Equal(t, "2024-02-26", got[2].Date)
}

func TestResolveMonthly_PartialOverlap(t *testing.T) {
	m := mondayMeeting()
	m.ClassStart = date("2024-02-14")
	m.ClassEnd = date("2024-03-10")
	got := ResolveMonthly([]Meeting{m}, nil, date("2024-02-01"))

	// 仅输出有效期与当月重叠区间内的周一：19 26
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02-19", got[0].Date)
	assert.Equal(t, "2024-02-26", got[1].Date)
}

func TestResolveMonthly_DecemberRollover(t *testing.T) {
	m := mondayMeeting()
	m.ClassStart = date("2024-12-01")
	m.ClassEnd = date("2025-01-31")
	got := ResolveMonthly([]Meeting{m}, nil, date("2024-12-03"))

	// 2024 年 12 月的周一：02 09 16 23 30，不含 2025-01 的任何日期
	require.Len(t, got, 5)
	assert.Equal(t, "2024-12-02", got[0].Date)
	assert.Equal(t, "2024-12-30", got[4].Date)
}
