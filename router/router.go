package router

import (
	"isidro-api/common"
	"isidro-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth             *handler.AuthHandler
	AuthMiddleware   *handler.AuthMiddleware
	User             *handler.UserHandler
	PersonalInfo     *handler.PersonalInfoHandler
	DiscipleInfo     *handler.DiscipleInfoHandler
	Devotion         *handler.DevotionHandler
	Training         *handler.TrainingHandler
	TrainingCategory *handler.TrainingCategoryHandler
	MinistryActivity *handler.MinistryActivityHandler
	Attendance       *handler.AttendanceHandler
	Outreach         *handler.OutreachHandler
}

func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	// protected wraps a handler with bearer-token authentication.
	protected := func(fn func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return h.AuthMiddleware.RequireAuth(handler.ErrorHandlingMiddleware(fn))
	}
	public := handler.ErrorHandlingMiddleware

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	// Auth
	mux.Handle("POST /auth/login", public(h.Auth.Login))
	mux.Handle("POST /auth/refresh", public(h.Auth.Refresh))
	mux.Handle("GET /auth/logout", public(h.Auth.Logout))
	mux.Handle("POST /auth/logout", public(h.Auth.Logout))
	mux.Handle("GET /auth/verify-token", public(h.Auth.VerifyToken))

	// Users
	mux.Handle("POST /users", public(h.User.Register))
	mux.Handle("GET /users", protected(h.User.ListUsers))
	mux.Handle("GET /users/{userId}", protected(h.User.GetUser))
	mux.Handle("PUT /users/{userId}", protected(h.User.UpdateUser))
	mux.Handle("DELETE /users/{userId}", protected(h.User.DeleteUser))

	// Personal information
	mux.Handle("POST /api/personal-info/{userId}", protected(h.PersonalInfo.Create))
	mux.Handle("GET /api/personal-info/{userId}", protected(h.PersonalInfo.Get))
	mux.Handle("PUT /api/personal-info/{userId}", protected(h.PersonalInfo.Update))
	mux.Handle("DELETE /api/personal-info/{userId}", protected(h.PersonalInfo.Delete))

	// Disciple information
	mux.Handle("POST /api/disciple-info/{userId}", protected(h.DiscipleInfo.Create))
	mux.Handle("GET /api/disciple-info/{userId}", protected(h.DiscipleInfo.Get))
	mux.Handle("PUT /api/disciple-info/{userId}", protected(h.DiscipleInfo.Update))
	mux.Handle("DELETE /api/disciple-info/{userId}", protected(h.DiscipleInfo.Delete))

	// Devotions
	mux.Handle("POST /api/devotions/{userId}", protected(h.Devotion.Create))
	mux.Handle("GET /api/devotions/{userId}", protected(h.Devotion.List))
	mux.Handle("GET /api/devotions/{userId}/{devotionId}", protected(h.Devotion.Get))
	mux.Handle("PUT /api/devotions/{userId}/{devotionId}", protected(h.Devotion.Update))
	mux.Handle("DELETE /api/devotions/{userId}/{devotionId}", protected(h.Devotion.Delete))

	// Trainings
	mux.Handle("POST /api/trainings/{userId}", protected(h.Training.Create))
	mux.Handle("GET /api/trainings/{userId}", protected(h.Training.List))
	mux.Handle("GET /api/trainings/{userId}/{trainingId}", protected(h.Training.Get))
	mux.Handle("PUT /api/trainings/{userId}/{trainingId}", protected(h.Training.Update))
	mux.Handle("DELETE /api/trainings/{userId}/{trainingId}", protected(h.Training.Delete))

	// Training categories
	mux.Handle("POST /api/training-categories", protected(h.TrainingCategory.Create))
	mux.Handle("GET /api/training-categories", protected(h.TrainingCategory.List))
	mux.Handle("GET /api/training-categories/{categoryId}", protected(h.TrainingCategory.Get))
	mux.Handle("PUT /api/training-categories/{categoryId}", protected(h.TrainingCategory.Update))
	mux.Handle("DELETE /api/training-categories/{categoryId}", protected(h.TrainingCategory.Delete))

	// Ministry activities
	mux.Handle("POST /api/ministry-activities", protected(h.MinistryActivity.Create))
	mux.Handle("GET /api/ministry-activities", protected(h.MinistryActivity.List))
	mux.Handle("GET /api/ministry-activities/{activityId}", protected(h.MinistryActivity.Get))
	mux.Handle("PUT /api/ministry-activities/{activityId}", protected(h.MinistryActivity.Update))
	mux.Handle("DELETE /api/ministry-activities/{activityId}", protected(h.MinistryActivity.Delete))

	// Attendance
	mux.Handle("POST /api/attendance", protected(h.Attendance.Create))
	mux.Handle("GET /api/attendance", protected(h.Attendance.List))
	mux.Handle("GET /api/attendance/{attendanceId}", protected(h.Attendance.Get))
	mux.Handle("PUT /api/attendance/{attendanceId}", protected(h.Attendance.Update))
	mux.Handle("DELETE /api/attendance/{attendanceId}", protected(h.Attendance.Delete))

	// Outreach programs
	mux.Handle("POST /api/outreach", protected(h.Outreach.Create))
	mux.Handle("GET /api/outreach", protected(h.Outreach.List))
	mux.Handle("GET /api/outreach/{outreachId}", protected(h.Outreach.Get))
	mux.Handle("PUT /api/outreach/{outreachId}", protected(h.Outreach.Update))
	mux.Handle("DELETE /api/outreach/{outreachId}", protected(h.Outreach.Delete))

	return mux
}
