package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/models"
	"portal/backend/storage"
)

func newMetricsService() (*MetricsService, *TrackingService) {
	ts := newTrackingService(storage.NewMemoryBackend())
	onDay(ts, 0) // 2025-09-01
	return NewMetricsService(ts), ts
}

func TestOverallProgressEmptyIsZero(t *testing.T) {
	ms, _ := newMetricsService()

	assert.Equal(t, 0, ms.CalculateOverallProgress())
}

func TestOverallProgressRoundedAverage(t *testing.T) {
	ms, ts := newMetricsService()

	ts.SaveCourseProgress(models.CourseProgressData{Courses: map[string]models.CourseProgress{
		"a": {Progress: 100},
		"b": {Progress: 50},
		"c": {Progress: 0},
	}})
	assert.Equal(t, 50, ms.CalculateOverallProgress())

	ts.SaveCourseProgress(models.CourseProgressData{Courses: map[string]models.CourseProgress{
		"a": {Progress: 33},
		"b": {Progress: 34},
	}})
	// 33.5 округляется до 34
	assert.Equal(t, 34, ms.CalculateOverallProgress())
}

func TestOverallProgressClampsBadData(t *testing.T) {
	ms, ts := newMetricsService()

	// Прогресс за пределами диапазона зажимается, а не ломает среднее
	ts.SaveCourseProgress(models.CourseProgressData{Courses: map[string]models.CourseProgress{
		"a": {Progress: 150},
		"b": {Progress: -20},
	}})
	assert.Equal(t, 50, ms.CalculateOverallProgress())
}

func TestCompletedAndInProgressCounts(t *testing.T) {
	ms, ts := newMetricsService()

	ts.SaveCourseProgress(models.CourseProgressData{Courses: map[string]models.CourseProgress{
		"done":       {Progress: 100},
		"halfway":    {Progress: 55},
		"almost":     {Progress: 99},
		"notStarted": {Progress: 0},
	}})

	assert.Equal(t, 1, ms.CompletedCoursesCount())
	assert.Equal(t, 2, ms.InProgressCoursesCount())
	// Курсы с нулевым прогрессом не попадают ни в одну корзину
	assert.LessOrEqual(t, ms.CompletedCoursesCount()+ms.InProgressCoursesCount(), 4)
}

func TestStudyTimeHoursCurrentMonthOnly(t *testing.T) {
	ms, ts := newMetricsService()

	ts.SaveStudyTime(models.StudyTimeData{
		DailyHistory: []models.DailyStudy{
			{Date: "2025-08-30", Minutes: 600}, // прошлый месяц не считается
			{Date: "2025-09-01", Minutes: 90},
			{Date: "2025-09-01", Minutes: 45},
		},
		CourseMinutes: map[string]int{},
	})

	// 135 минут -> 2 полных часа (округление вниз)
	assert.Equal(t, 2, ms.StudyTimeHours())
}

func TestDailyAverageHours(t *testing.T) {
	ms, ts := newMetricsService()
	onDay(ts, 9) // 2025-09-10, десятый день месяца

	ts.SaveStudyTime(models.StudyTimeData{
		DailyHistory: []models.DailyStudy{
			{Date: "2025-09-02", Minutes: 300},
			{Date: "2025-09-05", Minutes: 300},
		},
		CourseMinutes: map[string]int{},
	})

	// 600 минут = 10 часов за 10 прошедших дней
	assert.Equal(t, "1.0", ms.DailyAverageHours())
}

func TestDailyAverageHoursEmpty(t *testing.T) {
	ms, _ := newMetricsService()

	assert.Equal(t, "0.0", ms.DailyAverageHours())
}
