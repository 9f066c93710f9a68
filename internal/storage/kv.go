package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// ReadString returns a stored setting. ok is false when the key is absent.
func (s *Store) ReadString(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE name = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return v, true, nil
}

// ReadInt returns a stored integer setting.
func (s *Store) ReadInt(key string) (int, bool, error) {
	v, ok, err := s.ReadString(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("storage: setting %s is not an integer: %w", key, err)
	}
	return n, true, nil
}

// ReadBool returns a stored boolean setting.
func (s *Store) ReadBool(key string) (bool, bool, error) {
	v, ok, err := s.ReadString(key)
	if err != nil || !ok {
		return false, ok, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, true, fmt.Errorf("storage: setting %s is not a boolean: %w", key, err)
	}
	return b, true, nil
}

// Write stores a setting, replacing any previous value.
func (s *Store) Write(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// ClearSettings deletes every stored setting, restoring defaults on next load.
func (s *Store) ClearSettings() error {
	if _, err := s.db.Exec("DELETE FROM settings"); err != nil {
		return fmt.Errorf("storage: cannot clear settings: %w", err)
	}
	return nil
}
