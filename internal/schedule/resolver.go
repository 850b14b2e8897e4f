// Package schedule 实现课表解析核心：
// 由"每周重复的上课时段 + 按日期的停课记录"推导某天/某月实际要上的课。
// 本包为纯计算，不做任何 I/O，输入均为仓储层已经取好的行。
package schedule

import (
	"sort"
	"time"
)

// DateLayout 日期的统一格式
const DateLayout = "2006-01-02"

// Meeting 一个每周重复的上课时段及其所属课程的元数据
// Weekday 约定：0=周日 .. 6=周六，与 time.Weekday 一致
type Meeting struct {
	ID         string
	ClassID    string
	ClassCode  string
	ClassName  string
	Location   string
	Section    string
	Weekday    int
	StartTime  string // HH:MM:SS
	EndTime    string
	ClassStart time.Time // 课程有效期首日（含）
	ClassEnd   time.Time // 课程有效期末日（含）
}

// Cancellation 某时段在某一天的停课记录
type Cancellation struct {
	MeetingID string
	Date      time.Time
}

// Occurrence 某一天实际发生的一次上课
type Occurrence struct {
	Date      string `json:"date"` // YYYY-MM-DD
	MeetingID string `json:"class_meeting_id"`
	ClassID   string `json:"student_class_id"`
	ClassCode string `json:"class_code"`
	ClassName string `json:"class_name"`
	Location  string `json:"location"`
	Section   string `json:"section"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type cancelKey struct {
	meetingID string
	date      string
}

// truncateToDay 将时间截断到 UTC 日期粒度
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func buildCancelSet(cancellations []Cancellation) map[cancelKey]struct{} {
	set := make(map[cancelKey]struct{}, len(cancellations))
	for _, c := range cancellations {
		set[cancelKey{c.MeetingID, truncateToDay(c.Date).Format(DateLayout)}] = struct{}{}
	}
	return set
}

// activeOn 判断时段在某天是否处于排课状态（星期匹配且落在课程有效期内）
func activeOn(m Meeting, day time.Time) bool {
	if int(day.Weekday()) != m.Weekday {
		return false
	}
	start, end := truncateToDay(m.ClassStart), truncateToDay(m.ClassEnd)
	return !day.Before(start) && !day.After(end)
}

func occurrenceOf(m Meeting, day time.Time) Occurrence {
	return Occurrence{
		Date:      day.Format(DateLayout),
		MeetingID: m.ID,
		ClassID:   m.ClassID,
		ClassCode: m.ClassCode,
		ClassName: m.ClassName,
		Location:  m.Location,
		Section:   m.Section,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
}

// ResolveDaily 计算某一天实际要上的课
// 停课记录以反连接方式剔除：存在 (meeting, date) 停课行的时段绝不出现在结果中
// 结果按开始时间升序，相同时按课程代码升序，保证重复调用输出一致
func ResolveDaily(meetings []Meeting, cancellations []Cancellation, date time.Time) []Occurrence {
	day := truncateToDay(date)
	cancelled := buildCancelSet(cancellations)

	occurrences := make([]Occurrence, 0)
	for _, m := range meetings {
		if !activeOn(m, day) {
			continue
		}
		if _, ok := cancelled[cancelKey{m.ID, day.Format(DateLayout)}]; ok {
			continue
		}
		occurrences = append(occurrences, occurrenceOf(m, day))
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if occurrences[i].StartTime != occurrences[j].StartTime {
			return occurrences[i].StartTime < occurrences[j].StartTime
		}
		return occurrences[i].ClassCode < occurrences[j].ClassCode
	})
	return occurrences
}

// MonthRange 返回目标月份的首日（含）与下月首日（不含）
// 通过 AddDate 归一化处理跨年（12 月 -> 次年 1 月）
func MonthRange(anyDateInMonth time.Time) (monthStart, nextMonthStart time.Time) {
	y, m, _ := anyDateInMonth.UTC().Date()
	monthStart = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart = monthStart.AddDate(0, 1, 0)
	return
}

// ResolveMonthly 计算整月实际要上的课，逐天套用与 ResolveDaily 相同的三个条件
// 课程有效期只与当月部分重叠时，仅输出重叠区间内的日期
// 结果按（日期升序，开始时间升序）排列
func ResolveMonthly(meetings []Meeting, cancellations []Cancellation, anyDateInMonth time.Time) []Occurrence {
	monthStart, nextMonthStart := MonthRange(anyDateInMonth)
	cancelled := buildCancelSet(cancellations)

	occurrences := make([]Occurrence, 0)
	for day := monthStart; day.Before(nextMonthStart); day = day.AddDate(0, 0, 1) {
		dayKey := day.Format(DateLayout)
		var daily []Occurrence
		for _, m := range meetings {
			if !activeOn(m, day) {
				continue
			}
			if _, ok := cancelled[cancelKey{m.ID, dayKey}]; ok {
				continue
			}
			daily = append(daily, occurrenceOf(m, day))
		}
		sort.Slice(daily, func(i, j int) bool {
			if daily[i].StartTime != daily[j].StartTime {
				return daily[i].StartTime < daily[j].StartTime
			}
			return daily[i].ClassCode < daily[j].ClassCode
		})
		occurrences = append(occurrences, daily...)
	}
	return occurrences
}
