package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS residents (
	id                 TEXT PRIMARY KEY,
	first_name         TEXT NOT NULL,
	middle_name        TEXT NOT NULL DEFAULT '',
	last_name          TEXT NOT NULL,
	birth_date         TEXT NOT NULL,
	year_of_residency  INTEGER NOT NULL DEFAULT -1,
	month_of_residency INTEGER NOT NULL DEFAULT 0,
	address_1          TEXT NOT NULL,
	address_2          TEXT NOT NULL DEFAULT '',
	photo_path         TEXT NOT NULL DEFAULT '',
	archived           INTEGER NOT NULL DEFAULT 0,
	created_at         TEXT NOT NULL,
	updated_at         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_residents_archived ON residents(archived);
`

const (
	listActiveNamesSQL = `
SELECT id, first_name, middle_name, last_name
FROM residents
WHERE archived = 0
ORDER BY rowid`

	createResidentSQL = `
INSERT INTO residents (
	id, first_name, middle_name, last_name, birth_date,
	year_of_residency, month_of_residency, address_1, address_2, photo_path,
	archived, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	getResidentSQL = `
SELECT id, first_name, middle_name, last_name, birth_date,
	year_of_residency, month_of_residency, address_1, address_2, photo_path, archived
FROM residents
WHERE id = ?`

	updateResidentSQL = `
UPDATE residents
SET first_name = ?, middle_name = ?, last_name = ?, birth_date = ?,
	year_of_residency = ?, month_of_residency = ?, address_1 = ?, address_2 = ?,
	photo_path = ?, updated_at = ?
WHERE id = ? AND archived = 0`

	archiveResidentSQL = `
UPDATE residents
SET archived = 1, updated_at = ?
WHERE id = ? AND archived = 0`

	countActiveSQL = `SELECT COUNT(*) FROM residents WHERE archived = 0`
)
