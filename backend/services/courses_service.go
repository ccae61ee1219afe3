package services

import (
	"log"
	"sort"
	"strings"

	"portal/backend/models"
	"portal/backend/storage"
)

// CoursesService обслуживает список курсов дашборда и его
// пользовательские предпочтения (закладки, порядок, режим отображения)
type CoursesService struct {
	Store  storage.Backend
	Logger *log.Logger
}

func NewCoursesService(store storage.Backend, logger *log.Logger) *CoursesService {
	return &CoursesService{Store: store, Logger: logger}
}

// GetCourses возвращает список записанных курсов
func (cs *CoursesService) GetCourses() []models.Course {
	var courses []models.Course
	if !readRecord(cs.Store, cs.Logger, storage.KeyEnrolledCourses, &courses) {
		return []models.Course{}
	}
	return courses
}

func (cs *CoursesService) SaveCourses(courses []models.Course) SaveResult {
	if err := writeRecord(cs.Store, storage.KeyEnrolledCourses, courses); err != nil {
		return saveError(err, "courses")
	}
	return saveOK("Courses updated successfully")
}

// SearchCourses возвращает курсы по критериям поиска
func (cs *CoursesService) SearchCourses(search, sortBy string) []models.Course {
	courses := cs.GetCourses()

	// Поиск по названию/описанию/теме
	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.Course, 0, len(courses))
		for _, course := range courses {
			if strings.Contains(strings.ToLower(course.Title), needle) ||
				strings.Contains(strings.ToLower(course.ShortDesc), needle) ||
				strings.Contains(strings.ToLower(course.Topic), needle) {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	// Сортировка
	switch sortBy {
	case "newest":
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].EnrolledAt > courses[j].EnrolledAt
		})
	case "title":
		sort.SliceStable(courses, func(i, j int) bool {
			return strings.ToLower(courses[i].Title) < strings.ToLower(courses[j].Title)
		})
	case "progress":
		var progress models.CourseProgressData
		readRecord(cs.Store, cs.Logger, storage.KeyCourseProgress, &progress)
		sort.SliceStable(courses, func(i, j int) bool {
			return progress.Courses[courses[i].ID].Progress > progress.Courses[courses[j].ID].Progress
		})
	default: // сохраненный пользователем порядок
		courses = cs.applyOrder(courses)
	}

	return courses
}

// applyOrder выстраивает курсы по сохраненному порядку;
// курсы вне списка уходят в конец, сохраняя относительный порядок
func (cs *CoursesService) applyOrder(courses []models.Course) []models.Course {
	order := cs.GetCourseOrder()
	if len(order) == 0 {
		return courses
	}

	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	sort.SliceStable(courses, func(i, j int) bool {
		pi, iKnown := position[courses[i].ID]
		pj, jKnown := position[courses[j].ID]
		if iKnown && jKnown {
			return pi < pj
		}
		return iKnown && !jKnown
	})
	return courses
}

// GetBookmarks возвращает ID курсов, добавленных в закладки
func (cs *CoursesService) GetBookmarks() []string {
	var bookmarks []string
	if !readRecord(cs.Store, cs.Logger, storage.KeyCourseBookmarks, &bookmarks) {
		return []string{}
	}
	return bookmarks
}

// ToggleBookmark добавляет курс в закладки или убирает его оттуда
func (cs *CoursesService) ToggleBookmark(courseID string) SaveResult {
	bookmarks := cs.GetBookmarks()

	found := false
	next := make([]string, 0, len(bookmarks)+1)
	for _, id := range bookmarks {
		if id == courseID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, courseID)
	}

	if err := writeRecord(cs.Store, storage.KeyCourseBookmarks, next); err != nil {
		return saveError(err, "bookmarks")
	}
	return saveOK("Bookmarks updated successfully")
}

// GetCourseOrder возвращает сохраненный порядок карточек курсов
func (cs *CoursesService) GetCourseOrder() []string {
	var order []string
	if !readRecord(cs.Store, cs.Logger, storage.KeyCourseOrder, &order) {
		return []string{}
	}
	return order
}

func (cs *CoursesService) SaveCourseOrder(order []string) SaveResult {
	if err := writeRecord(cs.Store, storage.KeyCourseOrder, order); err != nil {
		return saveError(err, "course order")
	}
	return saveOK("Course order updated successfully")
}

// GetViewMode возвращает режим отображения списка курсов (grid по умолчанию)
func (cs *CoursesService) GetViewMode() string {
	var mode string
	if !readRecord(cs.Store, cs.Logger, storage.KeyCoursesViewMode, &mode) {
		return models.ViewModeGrid
	}
	if mode != models.ViewModeGrid && mode != models.ViewModeList {
		return models.ViewModeGrid
	}
	return mode
}

func (cs *CoursesService) SaveViewMode(mode string) SaveResult {
	if mode != models.ViewModeGrid && mode != models.ViewModeList {
		return saveFailed("Invalid view mode: " + mode)
	}

	if err := writeRecord(cs.Store, storage.KeyCoursesViewMode, mode); err != nil {
		return saveError(err, "view mode")
	}
	return saveOK("View mode updated successfully")
}
