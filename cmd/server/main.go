package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/colorcubes/internal/common/clock"
	"github.com/KirkDiggler/colorcubes/internal/common/passcode"
	"github.com/KirkDiggler/colorcubes/internal/common/uuid"
	"github.com/KirkDiggler/colorcubes/internal/dice"
	"github.com/KirkDiggler/colorcubes/internal/handlers/ws"
	historyRepo "github.com/KirkDiggler/colorcubes/internal/repositories/history"
	roomRepo "github.com/KirkDiggler/colorcubes/internal/repositories/room"
	roomService "github.com/KirkDiggler/colorcubes/internal/services/room"
)

// CLI defines the server's flags. Every flag also reads from the
// environment, with .env loaded first when present.
type CLI struct {
	Addr         string `help:"Listen address." env:"ADDR" default:":3000"`
	RedisAddr    string `help:"Redis address; empty keeps rooms in memory." env:"REDIS_ADDR"`
	LogLevel     string `help:"Log level." env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
	MaxPlayers   int    `help:"Maximum players per room." env:"MAX_PLAYERS" default:"10"`
	PayoutPolicy string `help:"Payout formula." env:"PAYOUT_POLICY" default:"stake-refund" enum:"stake-refund,double-match"`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli, kong.Name("colorcubes"), kong.Description("Real-time cube betting server."))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorcubes",
	})
	level, err := log.ParseLevel(cli.LogLevel)
	if err == nil {
		logger.SetLevel(level)
	}

	var rooms roomRepo.Repository
	var history historyRepo.Repository

	if cli.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cli.RedisAddr})

		rooms, err = roomRepo.NewRedis(&roomRepo.Config{RedisClient: client})
		if err != nil {
			logger.Fatal("room repository", "error", err)
		}

		history, err = historyRepo.NewRedis(&historyRepo.Config{RedisClient: client})
		if err != nil {
			logger.Fatal("history repository", "error", err)
		}

		logger.Info("using redis storage", "addr", cli.RedisAddr)
	} else {
		rooms = roomRepo.NewMemory()
		history = historyRepo.NewMemory()
		logger.Info("using in-memory storage")
	}

	hub, err := ws.New(&ws.Config{
		Logger:        logger,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("hub", "error", err)
	}

	svc, err := roomService.New(&roomService.Config{
		MaxPlayers:        cli.MaxPlayers,
		PayoutPolicy:      roomService.PayoutPolicy(cli.PayoutPolicy),
		RoomRepo:          rooms,
		HistoryRepo:       history,
		Publisher:         hub,
		DiceRoller:        dice.New(nil),
		Clock:             &clock.DefaultClock{},
		UUIDGenerator:     uuid.New(),
		PasscodeGenerator: passcode.New(nil),
	})
	if err != nil {
		logger.Fatal("room service", "error", err)
	}
	hub.SetService(svc)

	server, err := ws.NewServer(&ws.ServerConfig{
		Addr:   cli.Addr,
		Hub:    hub,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("server", "error", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server stopped", "error", err)
		}
	case s := <-sig:
		logger.Info("signal received", "signal", s)
		if err := server.Stop(); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}

	kctx.Exit(0)
}
