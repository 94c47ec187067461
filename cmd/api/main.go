package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/samar-devp/workforce-backend-go/internal/config"
	appHTTP "github.com/samar-devp/workforce-backend-go/internal/handler/http"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/database"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/jwt"
	"github.com/samar-devp/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/samar-devp/workforce-backend-go/internal/service/attendance"
	authService "github.com/samar-devp/workforce-backend-go/internal/service/auth"
	employeeService "github.com/samar-devp/workforce-backend-go/internal/service/employee"
	holidayService "github.com/samar-devp/workforce-backend-go/internal/service/holiday"
	leaveService "github.com/samar-devp/workforce-backend-go/internal/service/leave"
	locationService "github.com/samar-devp/workforce-backend-go/internal/service/location"
	reportService "github.com/samar-devp/workforce-backend-go/internal/service/report"
	shiftService "github.com/samar-devp/workforce-backend-go/internal/service/shift"
	weekoffService "github.com/samar-devp/workforce-backend-go/internal/service/weekoff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	weekOffRepo := postgresql.NewWeekOffPolicyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveApplicationRepo := postgresql.NewLeaveApplicationRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	snapshotRepo := postgresql.NewSnapshotRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService, logger)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, logger)
	shiftSvc := shiftService.NewShiftService(shiftRepo, logger)
	weekOffSvc := weekoffService.NewPolicyService(weekOffRepo, logger)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveApplicationRepo, logger)
	locationSvc := locationService.NewLocationService(locationRepo, logger)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		locationRepo,
		loc,
		logger,
	)
	reportSvc := reportService.NewReportService(snapshotRepo, logger)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		WeekOff:    appHTTP.NewWeekOffPolicyHandler(weekOffSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Location:   appHTTP.NewLocationHandler(locationSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
