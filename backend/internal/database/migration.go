package database

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Session history",
		query: `
			CREATE TABLE session (
			    id INTEGER PRIMARY KEY,
			    session_id TEXT,
			    closed_timestamp DATETIME,
			    selected_count INT,

			    UNIQUE (session_id)
			);

			CREATE TABLE session_asset (
			    session_id TEXT,
			    position INT,
			    asset_id TEXT,
			    asset_type INT,
			    title TEXT,

			    FOREIGN KEY(session_id) REFERENCES session(session_id) ON DELETE CASCADE,
			    UNIQUE (session_id, position)
			);

			CREATE INDEX session_asset_asset_id_idx ON session_asset (asset_id);
		`,
	},
}
