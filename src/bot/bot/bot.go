package bot

import (
	"context"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/emberpeak/supportbot/src/bot/components/cases"
	"github.com/emberpeak/supportbot/src/bot/components/counter"
	"github.com/emberpeak/supportbot/src/bot/components/punishments"
	"github.com/emberpeak/supportbot/src/bot/components/setup"
	"github.com/emberpeak/supportbot/src/bot/config"
)

type Bot struct {
	session      *discordgo.Session
	db           *gorm.DB
	rdb          *redis.Client
	config       config.Config
	setupHandler *setup.Handler
	caseHandler  *cases.Handler
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, counters *counter.Store) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	b := &Bot{
		session: dg,
		db:      db,
		rdb:     rdb,
		config:  cfg,
		ctx:     ctx,
		cancel:  cancel,
	}

	b.setupHandler = setup.NewHandler(cfg)
	b.caseHandler = cases.NewHandler(cases.Config{
		Cfg:         cfg,
		Counters:    counters,
		Punishments: punishments.NewService(db),
		Redis:       rdb,
	})

	dg.AddHandler(b.handleReady)
	dg.AddHandler(b.setupHandler.HandleMessage)
	dg.AddHandler(b.handleInteraction)

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	return b, nil
}

func (b *Bot) Start() error {
	return b.session.Open()
}

func (b *Bot) Stop() {
	b.cancel()
	b.wg.Wait()
	b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("Discord bot logged in as %s", event.User.Username)

	if b.db == nil {
		log.Printf("No punishment database configured; appeal embeds will be degraded")
	}

	if err := s.UpdateListeningStatus("tickets"); err != nil {
		log.Printf("Failed to set presence: %v", err)
	}
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.caseHandler.HandleInteraction(s, i)
}
