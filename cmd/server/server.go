package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/httpclient"
	"campus-activity-system/internal/global/logger"
	"campus-activity-system/internal/global/mediastore"
	"campus-activity-system/internal/global/middleware"
	internalOtel "campus-activity-system/internal/global/otel"
	internalSentry "campus-activity-system/internal/global/sentry"
	"campus-activity-system/internal/module"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if config.Get().Sentry.Dsn != "" {
		if err := internalSentry.Init(); err != nil {
			log.Error("Sentry 初始化失败", "error", err)
		}
	}

	database.Init()
	database.InitRedis()

	mediastore.Init()
	httpclient.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	if config.Get().Sentry.Dsn != "" {
		r.Use(internalSentry.Middleware())
		r.Use(middleware.SentryEnrichIP())
	}
	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	srv := &http.Server{
		Addr:    config.Get().Host + ":" + config.Get().Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			tools.PanicOnErr(err)
		}
	}()
	log.Info("服务已启动", "addr", srv.Addr)

	<-ctx.Done()
	log.Info("收到退出信号，开始优雅停机")

	// 给在途请求最多 10 秒排空时间
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP 服务停机超时", "error", err)
	}

	if config.Get().OTel.Enable {
		if err := internalOtel.Shutdown(context.Background()); err != nil {
			log.Error("关闭 TracerProvider 失败", "error", err)
		}
	}

	if err := database.Close(5 * time.Second); err != nil {
		log.Error("关闭数据库连接失败", "error", err)
	}

	if config.Get().Sentry.Dsn != "" {
		internalSentry.Flush(2 * time.Second)
	}

	log.Info("服务已退出")
}
