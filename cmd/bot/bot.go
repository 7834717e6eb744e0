package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-companion/internal/config"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/generator"
	"github.com/KirkDiggler/dnd-companion/internal/handlers/commands"
	discordmsg "github.com/KirkDiggler/dnd-companion/internal/messaging/discord"
	creationorch "github.com/KirkDiggler/dnd-companion/internal/orchestrators/creation"
	"github.com/KirkDiggler/dnd-companion/internal/redis"
	"github.com/KirkDiggler/dnd-companion/internal/repositories/gamesession"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Start the Discord bot",
	Long:  `Connect to the Discord gateway and serve character creation commands.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			slog.Warn("failed to close redis client", "error", closeErr)
		}
	}()

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return errors.Wrap(err, "failed to create discord session")
	}
	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	messenger, err := discordmsg.New(&discordmsg.Config{Session: session})
	if err != nil {
		return err
	}

	orch, err := creationorch.New(&creationorch.Config{
		SessionRepo:    gamesession.NewRedisRepository(redisClient),
		Messenger:      messenger,
		Generator:      generator.New(&generator.Config{}),
		ReplyTimeout:   cfg.ReplyTimeout,
		ReplaceTimeout: cfg.ReplaceTimeout,
	})
	if err != nil {
		return err
	}

	handler, err := commands.New(&commands.Config{Service: orch})
	if err != nil {
		return err
	}

	// Commands block for the whole conversation, so each one runs in its
	// own goroutine. The messenger's own MessageCreate handler feeds the
	// in-flight waits.
	session.AddHandler(func(s *discordgo.Session, event *discordgo.MessageCreate) {
		if event.Author == nil || event.Author.ID == s.State.User.ID {
			return
		}
		msg := &commands.Message{
			ChannelID: event.ChannelID,
			AuthorID:  event.Author.ID,
			Content:   event.Content,
		}
		go func() {
			handled, handleErr := handler.Handle(ctx, msg)
			if handleErr != nil {
				slog.Warn("command failed",
					"channel_id", msg.ChannelID,
					"author_id", msg.AuthorID,
					"code", errors.GetCode(handleErr),
					"error", handleErr,
				)
			}
			if handled {
				slog.Debug("command handled", "channel_id", msg.ChannelID, "author_id", msg.AuthorID)
			}
		}()
	})

	if err := session.Open(); err != nil {
		return errors.Wrap(err, "failed to open discord gateway")
	}
	slog.Info("bot connected", "redis_addr", cfg.RedisAddr)

	<-ctx.Done()

	slog.Info("closing discord gateway")
	if err := session.Close(); err != nil {
		return errors.Wrap(err, "failed to close discord gateway")
	}
	return nil
}
