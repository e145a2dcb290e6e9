package mux

import (
	"errors"
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"
)

type balanceResponse struct {
	TableID  string `json:"tableId"`
	PlayerID int64  `json:"playerId"`
	Balance  int    `json:"balance"`
}

func (m *Mux) getBalance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)

		playerID, err := strconv.ParseInt(vars["id"], 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		// a read must not create the player
		balance, ok, err := m.bank.Lookup(r.Context(), vars["table"], playerID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if !ok {
			writeJSONError(w, http.StatusNotFound, errors.New("player has no bankroll at this table"))
			return
		}

		writeJSON(w, http.StatusOK, balanceResponse{
			TableID:  vars["table"],
			PlayerID: playerID,
			Balance:  balance,
		})
	}
}
