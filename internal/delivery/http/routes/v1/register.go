package v1

import (
	"log"

	"staffing/internal/config"
	"staffing/internal/database"
	"staffing/internal/delivery/http/handler"
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/pkg/jwt"
	"staffing/internal/repository"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the infrastructure the API stack is built on. Cache and
// Notifier may be nil; the usecases degrade to uncached / silent operation.
type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    usecase.Cache
	Notifier usecase.Notifier
	Logger   *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	resourceRepo := repository.NewPostgresResourceRepository(d.DB)
	clientRepo := repository.NewPostgresClientRepository(d.DB)
	contractRepo := repository.NewPostgresContractRepository(d.DB)
	projectRepo := repository.NewPostgresProjectRepository(d.DB)
	skillRepo := repository.NewPostgresSkillRepository(d.DB)
	resourceSkillRepo := repository.NewPostgresResourceSkillRepository(d.DB)
	projectSkillRepo := repository.NewPostgresProjectSkillRepository(d.DB)
	assignmentRepo := repository.NewPostgresAssignmentRepository(d.DB)
	allocationRepo := repository.NewPostgresAllocationRepository(d.DB)
	thresholdRepo := repository.NewPostgresThresholdRepository(d.DB)
	holidayRepo := repository.NewPostgresHolidayRepository(d.DB)
	leaveRepo := repository.NewPostgresLeaveRepository(d.DB)
	auditRepo := repository.NewPostgresAuditRepository(d.DB)
	userRepo := repository.NewPostgresUserRepository(d.DB)

	rec := usecase.NewRecorder(auditRepo, d.Cache, d.Notifier, d.Logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	resourceUC := usecase.NewResourceUsecase(resourceRepo, resourceSkillRepo, rec)
	projectUC := usecase.NewProjectUsecase(projectRepo, projectSkillRepo, rec)
	clientUC := usecase.NewClientUsecase(clientRepo, contractRepo, rec)
	skillUC := usecase.NewSkillUsecase(skillRepo, rec)
	assignmentUC := usecase.NewAssignmentUsecase(assignmentRepo, allocationRepo, rec)
	leaveUC := usecase.NewLeaveUsecase(leaveRepo, rec)
	settingsUC := usecase.NewSettingsUsecase(thresholdRepo, holidayRepo, auditRepo, rec)
	staffingUC := usecase.NewStaffingUsecase(usecase.StaffingDeps{
		Resources:      resourceRepo,
		Projects:       projectRepo,
		Clients:        clientRepo,
		Contracts:      contractRepo,
		Skills:         skillRepo,
		ResourceSkills: resourceSkillRepo,
		ProjectSkills:  projectSkillRepo,
		Assignments:    assignmentRepo,
		Allocations:    allocationRepo,
		Thresholds:     thresholdRepo,
		Holidays:       holidayRepo,
		Cache:          d.Cache,
		CacheTTL:       d.Config.Redis.TTL,
		Logger:         d.Logger,
	})

	authHandler := handler.NewAuthHandler(authUC)
	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	handler.NewResourceHandler(resourceUC, staffingUC).RegisterRoutes(protected)
	handler.NewProjectHandler(projectUC).RegisterRoutes(protected)
	handler.NewClientHandler(clientUC).RegisterRoutes(protected)
	handler.NewSkillHandler(skillUC).RegisterRoutes(protected)
	handler.NewAssignmentHandler(assignmentUC).RegisterRoutes(protected)
	handler.NewLeaveHandler(leaveUC).RegisterRoutes(protected)
	handler.NewSettingsHandler(settingsUC).RegisterRoutes(protected)
	handler.NewStaffingHandler(staffingUC, d.Config.Export, d.Logger).RegisterRoutes(protected)
}
