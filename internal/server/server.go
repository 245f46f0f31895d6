package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fitclub/internal/api"
	"fitclub/internal/config"
	"fitclub/internal/db"
	"fitclub/internal/email"
	"fitclub/internal/equipment"
	"fitclub/internal/fitclass"
	"fitclub/internal/room"
	"fitclub/internal/session"
	"fitclub/internal/trainer"
	"fitclub/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

// New wires every handler onto one router. emailService may be nil, in which
// case confirmations are not sent.
func New(database *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	api.UseJSONFieldNames()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		corsMiddleware(),
		MetricsMiddleware(),
		RequestLoggingMiddleware(),
	)

	tx := db.NewTxManager(database)

	var (
		sessionNotifier session.Notifier
		classNotifier   fitclass.Notifier
	)
	if emailService != nil {
		sessionNotifier = emailService
		classNotifier = emailService
	}

	userHandler := user.NewHandler(user.NewService(database, user.NewRepository))
	equipmentHandler := equipment.NewHandler(equipment.NewService(database, equipment.NewRepository))
	trainerHandler := trainer.NewHandler(trainer.NewService(database, tx, trainer.NewRepository))
	roomHandler := room.NewHandler(room.NewService(database, tx, room.NewRepository))
	sessionHandler := session.NewHandler(session.NewService(session.Deps{
		DB:       database,
		Tx:       tx,
		Sessions: session.NewRepository,
		Trainers: trainer.NewRepository,
		Rooms:    room.NewRepository,
		Members:  user.NewRepository,
		Notifier: sessionNotifier,
	}))
	classHandler := fitclass.NewHandler(fitclass.NewService(fitclass.Deps{
		DB:       database,
		Tx:       tx,
		Classes:  fitclass.NewRepository,
		Trainers: trainer.NewRepository,
		Rooms:    room.NewRepository,
		Members:  user.NewRepository,
		Notifier: classNotifier,
	}))

	router.GET("/health", Health(database))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	v := router.Group("/")
	v.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		v.POST("/admins", userHandler.RegisterAdmin)
		v.GET("/admins", userHandler.ListAdmins)
		v.GET("/admins/:adminID/equipment", equipmentHandler.ListMaintenance)
		v.POST("/admins/:adminID/equipment", equipmentHandler.AddMaintenance)
		v.PUT("/equipment/:equipmentID", equipmentHandler.UpdateStatus)

		v.POST("/members", userHandler.RegisterMember)
		v.GET("/members", userHandler.FindMember)
		v.GET("/members/:memberID", userHandler.GetMember)
		v.GET("/members/:memberID/sessions", sessionHandler.ListMemberSessions)

		v.POST("/trainers", trainerHandler.RegisterTrainer)
		v.GET("/trainers", trainerHandler.ListTrainers)
		v.POST("/trainers/:trainerID/availability", trainerHandler.SetAvailability)
		v.GET("/trainers/:trainerID/availability", trainerHandler.GetAvailability)
		v.GET("/trainers/:trainerID/schedule", trainerHandler.GetSchedule)

		v.POST("/rooms", roomHandler.CreateRoom)
		v.GET("/rooms", roomHandler.ListRooms)
		v.POST("/rooms/bookings", roomHandler.BookRoom)
		v.GET("/rooms/:name/bookings", roomHandler.ListBookings)
		v.GET("/bookings/:bookingID", roomHandler.GetBooking)

		v.POST("/sessions", sessionHandler.BookSession)
		v.PUT("/sessions/:sessionID", sessionHandler.RescheduleSession)

		v.POST("/classes", classHandler.CreateClass)
		v.GET("/classes", classHandler.ListClasses)
		v.POST("/classes/:classID/enroll", classHandler.Enroll)
		v.GET("/classes/:classID/members", classHandler.Roster)
	}

	return &Server{
		router: router,
		db:     database,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
