package main

import (
	"log"
	"os"
	"os/signal"
	"time"

	"portal/backend/config"
	"portal/backend/services"
	"portal/backend/storage"
	"portal/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage
	store, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Services
	profiles := services.NewProfileService(store, cfg, logger)
	tracking := services.NewTrackingService(store, logger)
	metrics := services.NewMetricsService(tracking)
	courses := services.NewCoursesService(store, logger)
	notifications := services.NewNotificationsService(store, logger)

	// Отмечаем текущий день в трекинге
	tracking.InitializeTracking()

	profile := profiles.GetProfile()
	streak := tracking.GetStreak()
	unreadNotifications, unreadMail := notifications.UnreadCounts()

	logger.Printf("Welcome back, %s %s", profile.FirstName, profile.LastName)
	logger.Printf("Current streak: %d days (best: %d)", streak.CurrentStreak, streak.BestStreak)
	logger.Printf("Overall progress: %d%% (%d completed, %d in progress)",
		metrics.CalculateOverallProgress(), metrics.CompletedCoursesCount(), metrics.InProgressCoursesCount())
	logger.Printf("Study time this month: %dh (avg %sh/day)",
		metrics.StudyTimeHours(), metrics.DailyAverageHours())
	logger.Printf("Courses enrolled: %d | unread: %d notifications, %d mail",
		len(courses.GetCourses()), unreadNotifications, unreadMail)

	// Следим за внешними изменениями до Ctrl+C: трекинг опрашивается редко,
	// настройки — каждую секунду, как это делает дашборд
	trackingWatcher := storage.NewWatcher(store, time.Duration(cfg.TrackingRefreshSec)*time.Second)
	defer trackingWatcher.Close()
	settingsWatcher := storage.NewWatcher(store, time.Duration(cfg.PollIntervalMs)*time.Millisecond)
	defer settingsWatcher.Close()

	studyEvents := trackingWatcher.Subscribe(storage.KeyStudyTime)
	streakEvents := trackingWatcher.Subscribe(storage.KeyStreak)
	progressEvents := trackingWatcher.Subscribe(storage.KeyCourseProgress)
	settingsEvents := settingsWatcher.Subscribe(storage.KeyUserSettings)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	for {
		select {
		case event := <-studyEvents:
			logger.Printf("Study time changed externally (%s)", event.Key)
		case event := <-streakEvents:
			logger.Printf("Streak changed externally (%s)", event.Key)
		case event := <-progressEvents:
			logger.Printf("Course progress changed externally (%s)", event.Key)
		case event := <-settingsEvents:
			logger.Printf("Settings changed externally (%s)", event.Key)
		case <-stop:
			logger.Println("Shutting down")
			return
		}
	}
}
