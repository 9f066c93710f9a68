package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one local or SSH play session.
type Session struct {
	ID          string
	Origin      string // "local" or "ssh"
	User        string
	GamesPlayed int
	StartedAt   time.Time
	EndedAt     time.Time // zero while the session is open
}

// StartSession records a new session and returns its id.
func (s *Store) StartSession(origin, user string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, origin, username) VALUES (?, ?, ?)",
		id, origin, user,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// EndSession closes a session with the number of games it played.
func (s *Store) EndSession(id string, gamesPlayed int) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET games_played = ?, ended_at = CURRENT_TIMESTAMP WHERE id = ?",
		gamesPlayed, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: unknown session %s", id)
	}
	return nil
}

// RecentSessions lists the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, origin, username, games_played, started_at, ended_at
		 FROM sessions
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started, ended any
		if err := rows.Scan(&sess.ID, &sess.Origin, &sess.User, &sess.GamesPlayed, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = sqliteTime(started)
		sess.EndedAt = sqliteTime(ended)
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}
