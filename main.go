package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"fntp-backend/config"
	"fntp-backend/db"
	apiv1 "fntp-backend/controllers/v1"
	publicapi "fntp-backend/controllers/v1/public"
	"fntp-backend/fiberlog"
	"fntp-backend/initializers"
	"fntp-backend/lib/ws"
	"fntp-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не найден, используются переменные окружения")
	}
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMB * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	if config.Conf.App.ErrNotifyUrl != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyUrl))
	}

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.RequestMetrics())
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.ClientIDHeader,
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	// JSON запросы ограничены 1MB, загрузка документов проверяется отдельно
	apiV1.Use(middleware.WithBodyLimit(1024 * 1024))

	//опрос клиента
	public := fiber.New()
	apiV1.Mount("/public", public)
	public.Use(middleware.ClientIDRequired())
	publicapi.InitPublicAssessmentApiRouters(public)

	apiv1.InitHealthApiRouters(apiV1)
	apiv1.InitClientApiRouters(apiV1)
	apiv1.InitAssessmentApiRouters(apiV1)
	apiv1.InitSeverityApiRouters(apiV1)
	apiv1.InitDocumentApiRouters(apiV1)

	//websocket
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		initializers.StopQueue()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Error when closing database connection")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
