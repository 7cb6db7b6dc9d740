package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"reddit-monitor/config"
	"reddit-monitor/database"
	"reddit-monitor/monitor"
	"reddit-monitor/notifier"
	"reddit-monitor/reddit"
	"reddit-monitor/utils"

	"github.com/spf13/viper"
)

func main() {
	once := flag.Bool("once", false, "run a single scan cycle and exit")
	flag.Parse()

	config.LoadConfig()

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		log.Fatal("No bot token provided. Please set BOT_TOKEN in your .env or config file.")
	}

	cfg, err := config.MonitorFromViper()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	messenger, err := notifier.NewDiscordMessenger(token)
	if err != nil {
		log.Fatalf("Error creating Discord messenger: %v", err)
	}
	utils.InitLogger(messenger.Session())

	db, err := database.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	m := monitor.New(cfg, db, reddit.NewClient(), messenger)

	if *once {
		if err := m.Run(context.Background()); err != nil {
			log.Fatalf("Scan cycle failed: %v", err)
		}
		return
	}

	scheduler, err := monitor.StartScheduler(m, cfg.ScanIntervalHours)
	if err != nil {
		log.Fatalf("Error starting scheduler: %v", err)
	}

	fmt.Println("Monitor is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	scheduler.Stop()
	fmt.Println("Monitor stopped gracefully.")
}
