package models

type DailyStudy struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Minutes int    `json:"minutes"`
}

type StudyTimeData struct {
	WeeklyMinutes int            `json:"weeklyMinutes"`
	DailyHistory  []DailyStudy   `json:"dailyHistory"` // от старых к новым
	CourseMinutes map[string]int `json:"courseMinutes"`
}

type StreakDay struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Active bool   `json:"active"`
}

type StreakData struct {
	CurrentStreak int         `json:"currentStreak"`
	BestStreak    int         `json:"bestStreak"`
	StreakHistory []StreakDay `json:"streakHistory"`
}

type CourseProgress struct {
	Progress     int    `json:"progress"` // 0-100, 100 — курс завершен
	LastAccessed string `json:"lastAccessed"`
}

type CourseProgressData struct {
	Courses map[string]CourseProgress `json:"courses"`
}
