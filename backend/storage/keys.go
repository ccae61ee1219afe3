package storage

// Реестр ключей хранилища. Каждая доменная запись живет под своим ключом.
const (
	KeyUserProfile    = "user_profile"
	KeyUserImages     = "user_images"
	KeyUserSettings   = "user_settings"
	KeyUserAppearance = "user_appearance"

	KeyStudyTime      = "study_time_data"
	KeyStreak         = "streak_data"
	KeyCourseProgress = "course_progress"

	KeyEnrolledCourses = "enrolled_courses"
	KeyCourseBookmarks = "course-bookmarks"
	KeyCourseOrder     = "course-order"
	KeyCoursesViewMode = "courses-view-mode"

	KeyNotifications = "notifications"
	KeyMailMessages  = "mail_messages"

	KeyAuthToken = "auth_token"
)

// UserDataKeys возвращает полный список ключей пользовательских данных.
// Именно этот список очищает ClearAllUserData.
func UserDataKeys() []string {
	return []string{
		KeyUserProfile,
		KeyUserImages,
		KeyUserSettings,
		KeyUserAppearance,
		KeyStudyTime,
		KeyStreak,
		KeyCourseProgress,
		KeyEnrolledCourses,
		KeyCourseBookmarks,
		KeyCourseOrder,
		KeyCoursesViewMode,
		KeyNotifications,
		KeyMailMessages,
		KeyAuthToken,
	}
}
