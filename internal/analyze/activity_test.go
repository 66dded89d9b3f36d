package analyze

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/persona/internal/model"
)

func TestActivity_HighPostingFrequency(t *testing.T) {
	set := model.NewContentSet()
	for i := 0; i < 150; i++ {
		set[model.SectionComments] = append(set[model.SectionComments], model.ContentItem{Text: "ok"})
	}

	r := NewActivityAnalyzer().Analyze(set)

	if r.Mode != model.ActivityModeContent {
		t.Errorf("Expected content branch, got %s", r.Mode)
	}
	if r.PostingFrequency != FrequencyHigh {
		t.Errorf("Expected high posting frequency, got %s", r.PostingFrequency)
	}
}

func TestPostingFrequency_Thresholds(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, FrequencyLow},
		{20, FrequencyLow},
		{21, FrequencyModerate},
		{100, FrequencyModerate},
		{101, FrequencyHigh},
	}
	for _, tt := range tests {
		if got := PostingFrequency(tt.n); got != tt.want {
			t.Errorf("PostingFrequency(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestActivity_ContentLengthDistribution(t *testing.T) {
	r := NewActivityAnalyzer().Analyze(postsOnly(strings.Repeat("a", 90), strings.Repeat("b", 600)))

	l := r.ContentLength
	if l == nil {
		t.Fatal("Expected content length patterns")
	}
	if l.ShortPosts != 1 || l.MediumPosts != 0 || l.LongPosts != 1 {
		t.Errorf("Expected 1/0/1 short/medium/long, got %d/%d/%d", l.ShortPosts, l.MediumPosts, l.LongPosts)
	}
	if l.AverageLength != 345 {
		t.Errorf("Expected average length 345, got %f", l.AverageLength)
	}

	want := []string{
		"User has low posting frequency",
		"Average content length: 345 characters",
		"Prefers detailed posts",
	}
	if !reflect.DeepEqual(r.Insights, want) {
		t.Errorf("Expected %v, got %v", want, r.Insights)
	}
}

func TestActivity_TimestampBranch(t *testing.T) {
	// 2024-01-06 is a Saturday
	stamp := func(hour int) *time.Time {
		ts := time.Date(2024, 1, 6, hour, 0, 0, 0, time.UTC)
		return &ts
	}
	set := model.NewContentSet()
	set[model.SectionPosts] = []model.ContentItem{
		{Text: "a", CreatedAt: stamp(15)},
		{Text: "b", CreatedAt: stamp(9)},
		{Text: "c", CreatedAt: stamp(9)},
	}

	r := NewActivityAnalyzer().Analyze(set)

	if r.Mode != model.ActivityModeTimestamps {
		t.Fatalf("Expected timestamp branch, got %s", r.Mode)
	}
	if !reflect.DeepEqual(r.PeakHours, []int{9, 15}) {
		t.Errorf("Expected peak hours [9 15], got %v", r.PeakHours)
	}
	if r.DailyActivity["Saturday"] != 3 {
		t.Errorf("Expected 3 Saturday items, got %v", r.DailyActivity)
	}
	if r.Patterns.TimePreference != "day_active" || r.Patterns.ScheduleType != "weekend_heavy" {
		t.Errorf("Unexpected patterns %+v", r.Patterns)
	}

	want := []string{
		"Most active during morning hours",
		"Tends to be more active during daytime",
		"Shows increased activity on weekends",
	}
	if !reflect.DeepEqual(r.Insights, want) {
		t.Errorf("Expected %v, got %v", want, r.Insights)
	}
}

func TestPeakHours_TiesByHour(t *testing.T) {
	hourly := make([]int, 24)
	hourly[23] = 2
	hourly[4] = 2
	hourly[10] = 2
	hourly[1] = 2

	if got := PeakHours(hourly); !reflect.DeepEqual(got, []int{1, 4, 10}) {
		t.Errorf("Expected [1 4 10], got %v", got)
	}
}

func TestActivity_EmptySet(t *testing.T) {
	r := NewActivityAnalyzer().Analyze(model.NewContentSet())

	want := []string{
		"User has low posting frequency",
		"Average content length: 0 characters",
		"Prefers detailed posts",
	}
	if !reflect.DeepEqual(r.Insights, want) {
		t.Errorf("Expected %v, got %v", want, r.Insights)
	}
}
