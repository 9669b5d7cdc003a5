package main

import (
	"fmt"
	"net/http"

	"github.com/hydroseal/erp-backend-go/internal/config"
	appHTTP "github.com/hydroseal/erp-backend-go/internal/handler/http"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
	"github.com/hydroseal/erp-backend-go/internal/pkg/jwt"
	"github.com/hydroseal/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hydroseal/erp-backend-go/internal/service/attendance"
	authService "github.com/hydroseal/erp-backend-go/internal/service/auth"
	employeeService "github.com/hydroseal/erp-backend-go/internal/service/employee"
	leaveService "github.com/hydroseal/erp-backend-go/internal/service/leave"
	materialService "github.com/hydroseal/erp-backend-go/internal/service/material"
	payrollService "github.com/hydroseal/erp-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	materialRepo := postgresql.NewMaterialRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, leaveRepo)
	materialSvc := materialService.NewMaterialService(db, materialRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	materialHandler := appHTTP.NewMaterialHandler(materialSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		materialHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
