package services

import (
	"fmt"
	"math"
	"strings"
)

// MetricsService считает презентационные значения поверх сырых записей
// трекинга, ничего в них не меняя
type MetricsService struct {
	Tracking *TrackingService
}

func NewMetricsService(tracking *TrackingService) *MetricsService {
	return &MetricsService{Tracking: tracking}
}

// CalculateOverallProgress возвращает средний прогресс по всем курсам,
// округленный до целого процента. Без курсов — 0, а не деление на ноль.
func (ms *MetricsService) CalculateOverallProgress() int {
	data := ms.Tracking.GetCourseProgress()
	if len(data.Courses) == 0 {
		return 0
	}

	total := 0
	for _, course := range data.Courses {
		// Некорректный прогресс зажимаем, а не пробрасываем дальше
		total += clampProgress(course.Progress)
	}
	return int(math.Round(float64(total) / float64(len(data.Courses))))
}

// CompletedCoursesCount — количество курсов с прогрессом ровно 100
func (ms *MetricsService) CompletedCoursesCount() int {
	data := ms.Tracking.GetCourseProgress()

	count := 0
	for _, course := range data.Courses {
		if clampProgress(course.Progress) == 100 {
			count++
		}
	}
	return count
}

// InProgressCoursesCount — количество курсов с прогрессом строго между 0 и 100.
// Курсы с нулевым прогрессом не считаются начатыми.
func (ms *MetricsService) InProgressCoursesCount() int {
	data := ms.Tracking.GetCourseProgress()

	count := 0
	for _, course := range data.Courses {
		progress := clampProgress(course.Progress)
		if progress > 0 && progress < 100 {
			count++
		}
	}
	return count
}

// StudyTimeHours возвращает учебное время за текущий месяц в целых часах
// (всегда округление вниз)
func (ms *MetricsService) StudyTimeHours() int {
	return ms.monthlyMinutes() / 60
}

// DailyAverageHours возвращает среднее учебное время в часах за день
// текущего месяца, отформатированное для прямого показа
func (ms *MetricsService) DailyAverageHours() string {
	days := ms.Tracking.now().Day()
	average := float64(ms.monthlyMinutes()) / 60.0 / float64(days)
	return fmt.Sprintf("%.1f", average)
}

func (ms *MetricsService) monthlyMinutes() int {
	data := ms.Tracking.GetStudyTime()
	monthPrefix := ms.Tracking.now().Format("2006-01")

	total := 0
	for _, entry := range data.DailyHistory {
		if strings.HasPrefix(entry.Date, monthPrefix) {
			total += entry.Minutes
		}
	}
	return total
}
