package services

import (
	"log"
	"time"

	"portal/backend/models"
	"portal/backend/storage"
)

const dayFormat = "2006-01-02"

// TrackingService ведет сырые записи учебного времени, серии дней
// и прогресса по курсам
type TrackingService struct {
	Store  storage.Backend
	Logger *log.Logger

	// Подменяется в тестах для симуляции смены дней
	now func() time.Time
}

func NewTrackingService(store storage.Backend, logger *log.Logger) *TrackingService {
	return &TrackingService{Store: store, Logger: logger, now: time.Now}
}

func (ts *TrackingService) today() string {
	return ts.now().Format(dayFormat)
}

func (ts *TrackingService) yesterday() string {
	return ts.now().AddDate(0, 0, -1).Format(dayFormat)
}

// GetStudyTime возвращает запись учебного времени
func (ts *TrackingService) GetStudyTime() models.StudyTimeData {
	var data models.StudyTimeData
	if !readRecord(ts.Store, ts.Logger, storage.KeyStudyTime, &data) {
		return models.DefaultStudyTime()
	}
	if data.CourseMinutes == nil {
		data.CourseMinutes = map[string]int{}
	}
	return data
}

func (ts *TrackingService) SaveStudyTime(data models.StudyTimeData) SaveResult {
	if err := writeRecord(ts.Store, storage.KeyStudyTime, data); err != nil {
		return saveError(err, "study time")
	}
	return saveOK("Study time updated successfully")
}

// GetStreak возвращает запись серии дней
func (ts *TrackingService) GetStreak() models.StreakData {
	var data models.StreakData
	if !readRecord(ts.Store, ts.Logger, storage.KeyStreak, &data) {
		return models.DefaultStreak()
	}
	return data
}

func (ts *TrackingService) SaveStreak(data models.StreakData) SaveResult {
	if err := writeRecord(ts.Store, storage.KeyStreak, data); err != nil {
		return saveError(err, "streak")
	}
	return saveOK("Streak updated successfully")
}

// GetCourseProgress возвращает прогресс по всем курсам
func (ts *TrackingService) GetCourseProgress() models.CourseProgressData {
	var data models.CourseProgressData
	if !readRecord(ts.Store, ts.Logger, storage.KeyCourseProgress, &data) {
		return models.DefaultCourseProgress()
	}
	if data.Courses == nil {
		data.Courses = map[string]models.CourseProgress{}
	}
	return data
}

func (ts *TrackingService) SaveCourseProgress(data models.CourseProgressData) SaveResult {
	if err := writeRecord(ts.Store, storage.KeyCourseProgress, data); err != nil {
		return saveError(err, "course progress")
	}
	return saveOK("Course progress updated successfully")
}

// AddStudyMinutes добавляет минуты в сегодняшнюю запись и в счетчик курса
func (ts *TrackingService) AddStudyMinutes(courseID string, minutes int) SaveResult {
	if minutes <= 0 {
		return saveFailed("Minutes must be positive")
	}

	data := ts.GetStudyTime()
	today := ts.today()

	if n := len(data.DailyHistory); n > 0 && data.DailyHistory[n-1].Date == today {
		data.DailyHistory[n-1].Minutes += minutes
	} else {
		data.DailyHistory = append(data.DailyHistory, models.DailyStudy{Date: today, Minutes: minutes})
	}
	data.WeeklyMinutes = ts.weeklyTotal(data.DailyHistory)

	if courseID != "" {
		data.CourseMinutes[courseID] += minutes
	}

	return ts.SaveStudyTime(data)
}

// UpdateCourseProgress записывает прогресс курса, зажимая его в [0,100]
func (ts *TrackingService) UpdateCourseProgress(courseID string, progress int) SaveResult {
	if courseID == "" {
		return saveFailed("Course ID is required")
	}

	data := ts.GetCourseProgress()
	entry := data.Courses[courseID]
	entry.Progress = clampProgress(progress)
	entry.LastAccessed = ts.today()
	data.Courses[courseID] = entry

	return ts.SaveCourseProgress(data)
}

// InitializeTracking гарантирует существование записей трекинга и,
// если календарный день сменился, дописывает новый день и пересчитывает серию
func (ts *TrackingService) InitializeTracking() {
	today := ts.today()

	study := ts.GetStudyTime()
	streak := ts.GetStreak()
	progress := ts.GetCourseProgress()

	last := ""
	if n := len(streak.StreakHistory); n > 0 {
		last = streak.StreakHistory[n-1].Date
	}

	if last != today {
		if last == ts.yesterday() {
			// Вчера был активный день — серия продолжается
			streak.CurrentStreak++
		} else {
			// Пропущенный день (или самый первый запуск) обнуляет серию
			streak.CurrentStreak = 0
		}
		streak.StreakHistory = append(streak.StreakHistory, models.StreakDay{Date: today, Active: true})
		if streak.CurrentStreak > streak.BestStreak {
			streak.BestStreak = streak.CurrentStreak
		}
	}

	if n := len(study.DailyHistory); n == 0 || study.DailyHistory[n-1].Date != today {
		study.DailyHistory = append(study.DailyHistory, models.DailyStudy{Date: today})
		study.WeeklyMinutes = ts.weeklyTotal(study.DailyHistory)
	}

	// Пишем все три записи, чтобы ключи существовали уже после первой сессии
	if result := ts.SaveStudyTime(study); !result.Success && ts.Logger != nil {
		ts.Logger.Printf("initialize tracking: %s", result.Message)
	}
	if result := ts.SaveStreak(streak); !result.Success && ts.Logger != nil {
		ts.Logger.Printf("initialize tracking: %s", result.Message)
	}
	if result := ts.SaveCourseProgress(progress); !result.Success && ts.Logger != nil {
		ts.Logger.Printf("initialize tracking: %s", result.Message)
	}
}

// weeklyTotal суммирует минуты за последние 7 календарных дней
func (ts *TrackingService) weeklyTotal(history []models.DailyStudy) int {
	cutoff := ts.now().AddDate(0, 0, -6).Format(dayFormat)
	today := ts.today()

	total := 0
	for _, entry := range history {
		if entry.Date >= cutoff && entry.Date <= today {
			total += entry.Minutes
		}
	}
	return total
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
