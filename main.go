package main

// Environment:
// SIGNAL_MODE: "independent" (default) or "follower"
import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/joeyede/intersection/config"
	"github.com/joeyede/intersection/controller"
	"github.com/joeyede/intersection/gpio"
)

func main() {
	log.SetPrefix("[" + uuid.NewString()[:8] + "] ")

	if err := config.Validate(config.Durations()); err != nil {
		log.Fatal("Invalid timing constants: ", err)
	}

	cfg := controller.DefaultConfig()
	switch mode := os.Getenv("SIGNAL_MODE"); mode {
	case "", "independent":
	case "follower":
		cfg.Mode = controller.Follower
	default:
		log.Fatalf("Unknown SIGNAL_MODE %q, must be independent or follower", mode)
	}

	board, err := gpio.NewBoard()
	if err != nil {
		log.Fatal("Failed to initialize GPIO:", err)
	}
	defer board.Cleanup()

	ctrl, err := controller.New(cfg, board, board)
	if err != nil {
		log.Fatal("Failed to initialize controller:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(config.TickPeriod)
	defer ticker.Stop()

	log.Printf("Running %s mode, tick %s, cycle %d ticks", cfg.Mode, config.TickPeriod, cfg.Durations.Cycle())
	if err := ctrl.Run(ctx, ticker.C); err != nil && ctx.Err() == nil {
		log.Print(err)
	}
	log.Println("Shutting down")
}
