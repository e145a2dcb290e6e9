package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"pokernight-bot/pkg/bankroll"
)

// Mux handles HTTP requests for the operational surface of the bot:
// health checks and read-only bankroll lookups
type Mux struct {
	*gmux.Router
	version string
	bank    bankroll.Store
}

// NewMux returns a new HTTP mux
func NewMux(version string, bank bankroll.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		bank:    bank,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/table/{table}/player/{id:[0-9]+}/balance").Handler(this.getBalance())

	return this
}
