package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"payout-bot/internal/bot"
	"payout-bot/internal/config"
	"payout-bot/internal/copperx"
	"payout-bot/internal/notify"
	"payout-bot/internal/session"
)

// consoleNotifier imprime las respuestas del bot en la terminal.
// Los botones inline se muestran como ":data  texto"; escribir ":data"
// equivale a pulsarlos.
type consoleNotifier struct{}

func (consoleNotifier) Send(userID int64, text string, buttons ...bot.Button) error {
	fmt.Printf("\n%s\n", text)
	for _, b := range buttons {
		fmt.Printf("  :%s  %s\n", b.Data, b.Text)
	}
	return nil
}

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	client := copperx.NewClient(cfg.CopperxAPIURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, logger)
	authSvc := copperx.NewAuthService(client)
	walletSvc := copperx.NewWalletService(client)
	transferSvc := copperx.NewTransferService(client)

	pusher := notify.NewPusherClient(cfg.PusherAppKey, cfg.PusherCluster, cfg.CopperxAPIURL, logger)
	relay := notify.NewRelay(logger, pusher)

	sessions := session.NewStore()
	engine := bot.NewEngine(logger, sessions, authSvc, walletSvc, transferSvc, relay, consoleNotifier{})

	const userID int64 = 1

	fmt.Println("===== Copperx Payout Bot (console) =====")
	fmt.Println("Commands start with \"/\" (try /start). Type /quit to exit.")

	for {
		fmt.Print("\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		update := bot.Update{UserID: userID}
		switch {
		case strings.HasPrefix(line, "/"):
			update.Command = strings.TrimPrefix(line, "/")
		case strings.HasPrefix(line, ":"):
			update.Callback = strings.TrimPrefix(line, ":")
		default:
			update.Text = line
		}

		engine.Handle(ctx, update)
	}

	relay.Unsubscribe(userID)
	fmt.Println("bye")
}
