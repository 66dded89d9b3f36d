package analyze

import (
	"fmt"
	"sort"
	"time"

	"github.com/ppiankov/persona/internal/model"
	"github.com/ppiankov/persona/internal/textutil"
)

// Posting frequency labels
const (
	FrequencyHigh     = "high"
	FrequencyModerate = "moderate"
	FrequencyLow      = "low"
)

// ActivityAnalyzer buckets activity by time when timestamps exist and falls back
// to content volume and length otherwise
type ActivityAnalyzer struct{}

// NewActivityAnalyzer creates a new activity timeline analyzer
func NewActivityAnalyzer() *ActivityAnalyzer {
	return &ActivityAnalyzer{}
}

// Analyze selects the timestamp branch when any item carries a creation time
func (a *ActivityAnalyzer) Analyze(set model.ContentSet) model.ActivityResult {
	items := set.Flatten()

	var stamps []time.Time
	for _, item := range items {
		if item.CreatedAt != nil {
			stamps = append(stamps, *item.CreatedAt)
		}
	}

	if len(stamps) > 0 {
		return a.Timeline(stamps)
	}
	return a.ContentBased(items)
}

// Timeline buckets timestamps by hour and weekday
func (a *ActivityAnalyzer) Timeline(stamps []time.Time) model.ActivityResult {
	hourly := make([]int, 24)
	daily := make(map[string]int)
	for _, ts := range stamps {
		hourly[ts.Hour()]++
		daily[ts.Weekday().String()]++
	}

	result := model.ActivityResult{
		Mode:           model.ActivityModeTimestamps,
		HourlyActivity: hourly,
		DailyActivity:  daily,
		PeakHours:      PeakHours(hourly),
		Patterns:       activityPatterns(hourly, daily),
	}
	result.Insights = ActivityInsights(result)
	return result
}

// PeakHours returns up to three active hours by count, ties by earlier hour
func PeakHours(hourly []int) []int {
	var hours []int
	for h, n := range hourly {
		if n > 0 {
			hours = append(hours, h)
		}
	}
	sort.SliceStable(hours, func(i, j int) bool { return hourly[hours[i]] > hourly[hours[j]] })
	if len(hours) > 3 {
		hours = hours[:3]
	}
	return hours
}

func activityPatterns(hourly []int, daily map[string]int) *model.ActivityPatterns {
	day, night := 0, 0
	for h, n := range hourly {
		if h >= 6 && h < 18 {
			day += n
		} else {
			night += n
		}
	}

	p := &model.ActivityPatterns{TimePreference: "night_active", ScheduleType: "weekday_heavy"}
	if day > night {
		p.TimePreference = "day_active"
	}

	weekend := daily[time.Saturday.String()] + daily[time.Sunday.String()]
	weekday := 0
	for d := time.Monday; d <= time.Friday; d++ {
		weekday += daily[d.String()]
	}
	// 2.5 scales five weekdays against two weekend days
	if float64(weekend) > float64(weekday)/2.5 {
		p.ScheduleType = "weekend_heavy"
	}
	return p
}

// ContentBased classifies posting volume and content-length distribution
func (a *ActivityAnalyzer) ContentBased(items []model.ContentItem) model.ActivityResult {
	lengths := &model.ContentLengthPatterns{}
	total := 0
	for _, item := range items {
		n := textutil.Len(item.Text)
		total += n
		switch {
		case n < 100:
			lengths.ShortPosts++
		case n < 500:
			lengths.MediumPosts++
		default:
			lengths.LongPosts++
		}
	}
	lengths.AverageLength = textutil.Ratio(float64(total), float64(len(items)))

	result := model.ActivityResult{
		Mode:             model.ActivityModeContent,
		PostingFrequency: PostingFrequency(len(items)),
		ContentLength:    lengths,
		EngagementStyle:  "balanced",
	}
	result.Insights = ActivityInsights(result)
	return result
}

// PostingFrequency labels item volume: high above 100, moderate above 20, otherwise low
func PostingFrequency(n int) string {
	switch {
	case n > 100:
		return FrequencyHigh
	case n > 20:
		return FrequencyModerate
	default:
		return FrequencyLow
	}
}

// ActivityInsights describes whichever branch produced the result
func ActivityInsights(r model.ActivityResult) []string {
	insights := []string{}

	if r.Mode == model.ActivityModeContent {
		lengths := r.ContentLength
		if lengths == nil {
			lengths = &model.ContentLengthPatterns{}
		}
		total := lengths.ShortPosts + lengths.MediumPosts + lengths.LongPosts
		preference := "detailed"
		if float64(lengths.ShortPosts) > float64(total)/2 {
			preference = "short"
		}
		return append(insights,
			fmt.Sprintf("User has %s posting frequency", r.PostingFrequency),
			fmt.Sprintf("Average content length: %.0f characters", lengths.AverageLength),
			fmt.Sprintf("Prefers %s posts", preference),
		)
	}

	if len(r.PeakHours) > 0 {
		switch peak := r.PeakHours[0]; {
		case peak >= 6 && peak <= 12:
			insights = append(insights, "Most active during morning hours")
		case peak >= 12 && peak <= 18:
			insights = append(insights, "Most active during afternoon hours")
		case peak >= 18 && peak <= 22:
			insights = append(insights, "Most active during evening hours")
		default:
			insights = append(insights, "Most active during late night/early morning hours")
		}
	}

	if r.Patterns != nil && r.Patterns.TimePreference == "night_active" {
		insights = append(insights, "Tends to be more active during nighttime")
	} else {
		insights = append(insights, "Tends to be more active during daytime")
	}

	if r.Patterns != nil && r.Patterns.ScheduleType == "weekend_heavy" {
		insights = append(insights, "Shows increased activity on weekends")
	} else {
		insights = append(insights, "Maintains consistent weekday activity")
	}

	return insights
}
