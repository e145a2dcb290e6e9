package main

import "pokernight-bot/pkg/db"

func main() {
	db.Migrate()
}
