package domain

import "time"

// DashboardMetrics is the overview shown on the curation dashboard.
type DashboardMetrics struct {
	TotalRecords      int
	ScrapedToday      int
	ScrapedThisWeek   int
	ScrapedLastWeek   int
	StatusCounts      map[RecordStatus]int
	AverageConfidence float64
	TopSources        []SourceCount
	Confidence        ConfidenceDistribution
	// WeeklyGrowthRate is the week-over-week change in percent.
	WeeklyGrowthRate float64
	GeneratedAt      time.Time
}

// SourceCount is the number of records scraped from one source URL.
type SourceCount struct {
	SourceURL string
	Count     int
}

// ConfidenceDistribution buckets records by parsing confidence.
type ConfidenceDistribution struct {
	High   int // >= 0.8
	Medium int // [0.6, 0.8)
	Low    int // < 0.6
}

// Total returns the number of records across all buckets.
func (d ConfidenceDistribution) Total() int {
	return d.High + d.Medium + d.Low
}

// SourcePerformance summarises extraction quality for one source URL.
type SourcePerformance struct {
	SourceURL         string
	RecordCount       int
	AverageConfidence float64
	ApprovedCount     int
	LastScrapedAt     time.Time
}

// GrowthRate returns the week-over-week change in percent.
// When last week is zero the rate is 100 if this week is positive, else 0.
func GrowthRate(thisWeek, lastWeek int) float64 {
	if lastWeek == 0 {
		if thisWeek > 0 {
			return 100
		}
		return 0
	}
	return float64(thisWeek-lastWeek) / float64(lastWeek) * 100
}

// RecordTotals are the time-windowed record counts feeding the dashboard.
type RecordTotals struct {
	Total             int
	ScrapedToday      int
	ScrapedThisWeek   int
	ScrapedLastWeek   int
	AverageConfidence float64
}

// ReportWindow holds the window boundaries the dashboard counts against.
// ThisWeek is the rolling seven days ending now; LastWeek the seven before that.
type ReportWindow struct {
	TodayStart    time.Time
	WeekStart     time.Time
	LastWeekStart time.Time
}

// NewReportWindow computes the windows for now, with "today" starting at
// midnight UTC.
func NewReportWindow(now time.Time) ReportWindow {
	now = now.UTC()
	week := 7 * 24 * time.Hour
	return ReportWindow{
		TodayStart:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		WeekStart:     now.Add(-week),
		LastWeekStart: now.Add(-2 * week),
	}
}
