package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-timer-skill/config"
	_ "voice-timer-skill/docs" // Swagger docs
	"voice-timer-skill/internal/httpserver"
	"voice-timer-skill/internal/middleware"
	skillHTTP "voice-timer-skill/internal/skill/delivery/http"
	"voice-timer-skill/internal/skill/dispatcher"
	"voice-timer-skill/internal/skill/session"
	"voice-timer-skill/internal/test"
	"voice-timer-skill/internal/timer/delivery/intent"
	"voice-timer-skill/internal/timer/repository/alerts"
	"voice-timer-skill/pkg/log"
	"voice-timer-skill/pkg/tracing"
)

// @title       Voice Timer Skill API
// @description Voice assistant skill backend that sets, reads, pauses, resumes and deletes timers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Timer Skill...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing (optional)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(ctx, tracing.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Version:     httpserver.HealthVersion,
			Environment: cfg.Environment.Name,
			Endpoint:    cfg.Tracing.Endpoint,
		})
		if err != nil {
			logger.Warnf(ctx, "Tracing not available (optional): %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warnf(context.Background(), "Tracing shutdown: %v", err)
				}
			}()
			logger.Infof(ctx, "Tracing exporting to %s", cfg.Tracing.Endpoint)
		}
	}

	// 4. Session store
	store := session.NewStore(cfg.Session.MaxEntries, cfg.Session.TTL)

	// 5. Timer API
	timers := alerts.NewFactory(alerts.FactoryConfig{
		EndpointOverride: cfg.Timer.APIEndpoint,
		RequestTimeout:   cfg.Timer.RequestTimeout,
	}, logger)

	// 6. Handler chain
	handlers := intent.New(logger, timers, intent.Config{
		Locale:       cfg.Skill.Locale,
		TimerLabel:   cfg.Timer.Label,
		AnnounceText: cfg.Timer.AnnounceText,
		FanoutLimit:  cfg.Timer.FanoutLimit,
	})
	disp := dispatcher.New(logger, dispatcher.WithTimeout(cfg.Skill.RequestTimeout)).
		Register(handlers.RequestHandlers()...).
		RegisterErrorHandler(handlers.ErrorHandlers()...)
	logger.Infof(ctx, "Registered %d request handlers", disp.Len())

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.Security.TrustedProxies,
		Middleware: middleware.New(logger, middleware.Config{
			AllowedIPs:      cfg.Security.AllowedIPs,
			RateLimitPerMin: cfg.Security.RateLimitPerMin,
		}),
		SkillHandler: skillHTTP.New(logger, disp, store, skillHTTP.Config{
			ApplicationID:      cfg.Skill.ApplicationID,
			TimestampTolerance: cfg.Skill.TimestampTolerance,
		}),
		TestHandler: test.New(logger, disp, store),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// Print the public skill endpoint when a local tunnel is running
	if cfg.HTTPServer.TunnelAPI != "" {
		go func() {
			publicURL, err := detectTunnelURL(ctx, cfg.HTTPServer.TunnelAPI)
			if err != nil {
				logger.Warnf(ctx, "Could not detect tunnel URL: %v", err)
				return
			}
			logger.Infof(ctx, "Skill endpoint for the developer console: %s/alexa", publicURL)
		}()
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
