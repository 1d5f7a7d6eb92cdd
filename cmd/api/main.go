package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	appHTTP "github.com/dayflow-hr/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	credentialService "github.com/dayflow-hr/dayflow-backend-go/internal/service/credential"
	dashboardService "github.com/dayflow-hr/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	salaryService "github.com/dayflow-hr/dayflow-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	issuer := credentialService.NewIssuer(cfg.Org.LoginIDPrefix, employeeRepo)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService, jwtRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, salaryRepo, issuer, slog.Default())
	attendanceSvc, err := attendanceService.NewAttendanceService(attendanceRepo, cfg.Attendance)
	if err != nil {
		log.Fatal("Invalid attendance policy: ", err)
	}
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo)

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Invalid timezone: ", err)
	}
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
