package model

// SessionID identifies one game session from creation to reset
type SessionID string

// Session is the complete persisted state of one game: the roster in join
// order, the transaction log newest-first, and the session id. The stored
// JSON key for the id is "gameId" for compatibility with existing saves.
type Session struct {
	Players      []Player      `json:"players"`
	Transactions []Transaction `json:"transactions"`
	ID           SessionID     `json:"gameId"`
}

// NewSession returns an empty session with the given id
func NewSession(id SessionID) *Session {
	return &Session{
		Players:      []Player{},
		Transactions: []Transaction{},
		ID:           id,
	}
}

// PlayerIndex returns the roster index of the player with the given id, or -1
func (s *Session) PlayerIndex(id PlayerID) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// Player returns the player with the given id
func (s *Session) Player(id PlayerID) (Player, bool) {
	if i := s.PlayerIndex(id); i >= 0 {
		return s.Players[i], true
	}
	return Player{}, false
}

// ActivePlayers returns the players still in the game, in roster order
func (s *Session) ActivePlayers() []Player {
	var active []Player
	for _, p := range s.Players {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

// Prepend inserts a transaction at the head of the log (newest first)
func (s *Session) Prepend(tx Transaction) {
	s.Transactions = append([]Transaction{tx}, s.Transactions...)
}
