package main

import (
	"fmt"
	"os"

	"github.com/secretaria-online/secretaria-api/internal/auth"
	"github.com/secretaria-online/secretaria-api/internal/config"
	"github.com/secretaria-online/secretaria-api/internal/db"
	"github.com/secretaria-online/secretaria-api/internal/excel"
	httphandler "github.com/secretaria-online/secretaria-api/internal/http"
	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/logger"
	"github.com/secretaria-online/secretaria-api/internal/mail"
	"github.com/secretaria-online/secretaria-api/internal/pdf"
	"github.com/secretaria-online/secretaria-api/internal/repository"
	"github.com/secretaria-online/secretaria-api/internal/service"
	"github.com/secretaria-online/secretaria-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	store := repository.NewStore(database)

	files, err := storage.NewLocalStore(cfg.Uploads.BaseDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init upload storage")
	}

	var mailer service.Mailer
	if smtp := mail.New(cfg.SMTP); smtp != nil {
		mailer = smtp
	} else {
		log.Warn().Msg("smtp not configured, mail notifications disabled")
	}

	pdfGenerator := pdf.NewGenerator()
	excelGenerator := excel.NewGenerator()

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL)
	parser := auth.NewParser(cfg.Auth.AccessSecret)

	services := httphandler.Services{
		Auth:        service.NewAuthService(store, issuer),
		Students:    service.NewStudentService(store),
		Teachers:    service.NewTeacherService(store),
		Courses:     service.NewCourseService(store),
		Disciplines: service.NewDisciplineService(store),
		Classes:     service.NewClassService(store),
		Enrollments: service.NewEnrollmentService(store, mailer, log),
		Evaluations: service.NewEvaluationService(store),
		Grades:      service.NewGradeService(store),
		Documents:   service.NewDocumentService(store, files),
		Contracts:   service.NewContractService(store, pdfGenerator, files, cfg.Uploads.ContractsDir, log),
		Templates:   service.NewTemplateService(store),
		Reports:     service.NewReportService(store, excelGenerator),
	}

	handler := httphandler.NewHandler(services, files, cfg.Uploads.DocumentsDir, cfg.Environment, log)
	authMiddleware := middleware.Auth(parser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting secretaria api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
