package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokernight-bot/internal/config"
	"pokernight-bot/pkg/bankroll"
	"pokernight-bot/pkg/db"
)

var (
	command  = flag.String("c", "credit", "specifies the command (credit)")
	tableID  = flag.String("table", "", "the table (guild) the player belongs to")
	playerID = flag.Int64("player", 0, "the player ID")
	amount   = flag.Int("amount", 0, "the amount of chips to credit")
)

func main() {
	flag.Parse()

	switch *command {
	case "credit":
		if *tableID == "" || *playerID == 0 {
			logrus.Fatal("-table and -player are required")
		}

		if *amount <= 0 {
			logrus.Fatal("-amount must be positive")
		}

		bank := bankroll.NewPostgres(db.Instance(), config.Instance().StartingBalance)
		balance, err := bank.Adjust(context.Background(), *tableID, *playerID, *amount)
		if err != nil {
			logrus.WithError(err).Fatal("could not credit player")
		}

		fmt.Printf("Credited ${%d} to player %d. New balance: ${%d}\n", *amount, *playerID, balance)

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}
