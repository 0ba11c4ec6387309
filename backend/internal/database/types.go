package database

import "time"

type TableExist int

const (
	TableNotExist TableExist = iota
	TableExists
)

type Session struct {
	Id              int64     `db:"id,omitempty"`
	SessionId       string    `db:"session_id"`
	ClosedTimestamp time.Time `db:"closed_timestamp"`
	SelectedCount   int       `db:"selected_count"`
}

type SessionAsset struct {
	SessionId string `db:"session_id"`
	Position  int    `db:"position"`
	AssetId   string `db:"asset_id"`
	AssetType int    `db:"asset_type"`
	Title     string `db:"title"`
}
