package models

type UserProfile struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	StudentID  string `json:"studentId"`
	Course     string `json:"course"`
	YearLevel  string `json:"yearLevel"`
	Section    string `json:"section"`
	Phone      string `json:"phone"`
	Birthday   string `json:"birthday"`
	Address    string `json:"address"`
}

type UserImages struct {
	CoverImage   *string `json:"coverImage"`
	ProfileImage *string `json:"profileImage"`
}

type UserSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	CourseReminders    bool `json:"courseReminders"`
	AssignmentAlerts   bool `json:"assignmentAlerts"`
	GradeUpdates       bool `json:"gradeUpdates"`
	ShowOnlineStatus   bool `json:"showOnlineStatus"`
}

type UserAppearance struct {
	Theme       string `json:"theme"` // light, dark, system
	AccentColor string `json:"accentColor"`
	FontSize    int    `json:"fontSize"`
}

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)
