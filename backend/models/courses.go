package models

type Course struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDesc        string `json:"shortDesc"`
	Difficulty       string `json:"difficulty"` // beginner, intermediate, advanced
	Topic            string `json:"topic"`
	LogoURL          string `json:"logoUrl"`
	Lessons          int    `json:"lessons"`
	CompletedLessons int    `json:"completedLessons"`
	EnrolledAt       string `json:"enrolledAt"` // YYYY-MM-DD
}

const (
	ViewModeGrid = "grid"
	ViewModeList = "list"
)
