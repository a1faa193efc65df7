// @title Truth Buddy API
// @version 1.0
// @description Backend for the Truth Buddy trivia game: daily hot questions, points and streaks, leaderboards and content verification. Runs against a relational database when one is reachable and a local JSON store otherwise.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"truth_buddy_backend/internal/app"
	"truth_buddy_backend/internal/config"
	"truth_buddy_backend/pkg/configwatcher"
	"truth_buddy_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Re-init the logger on config changes so the log level follows
	// server.mode without a restart.
	go configwatcher.WatchConfig(*configPath+"/config.yaml", func(newCfg *config.Config) {
		logger.InitLogger(newCfg)
	})

	application.Run()
}
