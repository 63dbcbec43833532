package main

import (
	"fmt"
	"log"

	"HistoryAtlas/internal/api"
	"HistoryAtlas/internal/config"
	"HistoryAtlas/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrusLogger.WithError(err).Warnf("日志级别 %q 无效，使用 info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logrusLogger.SetLevel(level)
	logrusLogger.Info("配置文件加载成功")

	// 3. 连接数据库（连接失败直接退出）
	db, err := database.Open(&cfg.Database, logrusLogger)
	if err != nil {
		logrusLogger.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 库表不存在则自动创建
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logrusLogger.Fatal(err)
		}
		logrusLogger.Info("数据库表结构检查完成（不存在则已创建）")
	}

	// 5. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 6. 注册路由
	r, err := api.NewRouter(db, logrusLogger, api.RouterOptions{PProf: cfg.Server.PProf})
	if err != nil {
		logrusLogger.Fatalf("初始化路由失败: %v", err)
	}

	// 7. 启动服务（从配置读取端口）
	port := cfg.Server.Port
	logrusLogger.Infof("服务启动成功，端口：%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logrusLogger.Fatalf("启动服务失败: %v", err)
	}
}
