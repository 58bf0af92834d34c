package store

import (
	"fmt"

	"PriceSentinel/internal/model"
)

// PutRoom adds or replaces a trade-room configuration.
func (s *Store) PutRoom(room model.TradeRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO trade_rooms (room_id, room_name, collect, enabled) VALUES (?,?,?,?)`,
		room.RoomID, room.RoomName, boolInt(room.Collect), boolInt(room.Enabled))
	if err != nil {
		return fmt.Errorf("put room: %w", err)
	}
	return nil
}

// DeleteRoom removes a room, reporting whether it existed.
func (s *Store) DeleteRoom(roomID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`DELETE FROM trade_rooms WHERE room_id = ?`, roomID)
	if err != nil {
		return false, fmt.Errorf("delete room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetRoom returns an enabled room's configuration, or ok=false.
func (s *Store) GetRoom(roomID string) (model.TradeRoom, bool, error) {
	var room model.TradeRoom
	var collect, enabled int
	err := s.db.QueryRow(`SELECT room_id, IFNULL(room_name,''), collect, enabled FROM trade_rooms
		WHERE room_id = ? AND enabled = 1`, roomID).Scan(&room.RoomID, &room.RoomName, &collect, &enabled)
	if err != nil {
		if isNoRows(err) {
			return room, false, nil
		}
		return room, false, fmt.Errorf("get room: %w", err)
	}
	room.Collect = collect == 1
	room.Enabled = enabled == 1
	return room, true, nil
}

// ListRooms returns all rooms, newest first.
func (s *Store) ListRooms() ([]model.TradeRoom, error) {
	rows, err := s.db.Query(`SELECT room_id, IFNULL(room_name,''), collect, enabled, created_at
		FROM trade_rooms ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.TradeRoom
	for rows.Next() {
		var room model.TradeRoom
		var collect, enabled int
		if err := rows.Scan(&room.RoomID, &room.RoomName, &collect, &enabled, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		room.Collect = collect == 1
		room.Enabled = enabled == 1
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
