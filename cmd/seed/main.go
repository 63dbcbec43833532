package main

import (
	"context"
	"flag"
	"log"

	"HistoryAtlas/internal/config"
	"HistoryAtlas/internal/database"
	"HistoryAtlas/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "config/seed.yaml", "预置数据 YAML 文件")
	reset := flag.Bool("reset", false, "导入前清空全部表")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}
	logger := logrus.New()

	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		logger.Fatalf("初始化数据库失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal(err)
	}

	fixture, err := seed.ReadFile(*file)
	if err != nil {
		logger.Fatal(err)
	}
	if err := seed.NewLoader(db, logger).Load(context.Background(), fixture, seed.Options{Reset: *reset}); err != nil {
		logger.Fatalf("导入预置数据失败: %v", err)
	}
}
