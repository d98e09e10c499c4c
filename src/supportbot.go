package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/emberpeak/supportbot/src/bot/bot"
	"github.com/emberpeak/supportbot/src/bot/components/counter"
	"github.com/emberpeak/supportbot/src/bot/config"
	"github.com/emberpeak/supportbot/src/bot/data"
	"github.com/emberpeak/supportbot/src/webserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var db *gorm.DB
	if cfg.MySQLDSN != "" {
		db = data.MustMySQL(cfg.MySQLDSN)
		log.Println("Connected to punishment database")
	} else {
		log.Println("MYSQL_DSN not set; running without punishment lookups")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	}

	counters, err := counter.Load(cfg.CounterFile)
	if err != nil {
		log.Fatalf("counters: %v", err)
	}

	b, err := bot.New(cfg, db, rdb, counters)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	if cfg.StatusAddr != "" {
		go func() {
			srv := webserver.New(counters, db, rdb)
			if err := srv.Run(cfg.StatusAddr); err != nil {
				log.Printf("status server: %v", err)
			}
		}()
	}

	log.Println("Support bot is running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	b.Stop()
	log.Println("Support bot stopped gracefully")
}
