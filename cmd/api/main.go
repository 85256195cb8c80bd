package main

import (
	"fmt"
	"net/http"

	"github.com/schoolhub/attendance-backend-go/internal/config"
	appHTTP "github.com/schoolhub/attendance-backend-go/internal/handler/http"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/database"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/jwt"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/oauth"
	"github.com/schoolhub/attendance-backend-go/internal/repository/postgresql"
	accessService "github.com/schoolhub/attendance-backend-go/internal/service/access"
	attendanceService "github.com/schoolhub/attendance-backend-go/internal/service/attendance"
	authService "github.com/schoolhub/attendance-backend-go/internal/service/auth"
	leaveService "github.com/schoolhub/attendance-backend-go/internal/service/leave"
	policyService "github.com/schoolhub/attendance-backend-go/internal/service/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	schoolRepo := postgresql.NewSchoolRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	customRoleRepo := postgresql.NewCustomRoleRepository(db)
	delegatedAccessRepo := postgresql.NewDelegatedAccessRepository(db)
	leavePolicyRepo := postgresql.NewLeavePolicyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	scopeResolver := accessService.NewScopeResolver(customRoleRepo, delegatedAccessRepo)
	policyResolver := policyService.NewPolicyResolver(leavePolicyRepo)

	authSvc := authService.NewAuthService(staffRepo, JWTService, GoogleService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		staffRepo,
		schoolRepo,
		leaveRequestRepo,
		scopeResolver,
		policyResolver,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, staffRepo, schoolRepo, scopeResolver)
	policySvc := policyService.NewPolicyService(leavePolicyRepo, schoolRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	policyHandler := appHTTP.NewPolicyHandler(policySvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		policyHandler,
		[]string{cfg.App.FrontendURL},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
