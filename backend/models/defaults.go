package models

// DefaultProfile возвращает полную запись профиля по умолчанию.
// Все поля, кроме middleName, обязаны быть заполнены.
func DefaultProfile() UserProfile {
	return UserProfile{
		FirstName: "Josiah",
		LastName:  "De Asis",
		Email:     "josiah.deasis@student.edu.ph",
		StudentID: "2021-00123",
		Course:    "BS Information Technology",
		YearLevel: "3rd Year",
		Section:   "A",
		Phone:     "+63 912 345 6789",
		Birthday:  "2003-05-12",
		Address:   "Quezon City, Philippines",
	}
}

func DefaultImages() UserImages {
	// Отсутствие записи эквивалентно двум null-полям
	return UserImages{}
}

func DefaultSettings() UserSettings {
	return UserSettings{
		EmailNotifications: true,
		PushNotifications:  true,
		CourseReminders:    true,
		AssignmentAlerts:   true,
		GradeUpdates:       true,
		ShowOnlineStatus:   true,
	}
}

func DefaultAppearance() UserAppearance {
	return UserAppearance{
		Theme:       ThemeSystem,
		AccentColor: "#3b82f6",
		FontSize:    16,
	}
}

func DefaultStudyTime() StudyTimeData {
	return StudyTimeData{
		DailyHistory:  []DailyStudy{},
		CourseMinutes: map[string]int{},
	}
}

func DefaultStreak() StreakData {
	return StreakData{
		StreakHistory: []StreakDay{},
	}
}

func DefaultCourseProgress() CourseProgressData {
	return CourseProgressData{
		Courses: map[string]CourseProgress{},
	}
}
