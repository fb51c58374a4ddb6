package db

// SchemaSQL is the complete schema for fresh installs. Tests build
// their in-memory databases from this same constant.
//
// Attendance IDs and queue positions use AUTOINCREMENT so they stay
// monotonic and are never reused, even after deletes.
const SchemaSQL = `
-- Agents (directory + capacity ledger)
CREATE TABLE IF NOT EXISTS agents (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	team TEXT NOT NULL CHECK(team IN ('CARDS', 'LOANS', 'OTHER')),
	active_count INTEGER NOT NULL DEFAULT 0 CHECK(active_count >= 0 AND active_count <= 3),
	registered_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_agents_team ON agents(team);

-- Attendances (request store)
CREATE TABLE IF NOT EXISTS attendances (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	team TEXT NOT NULL CHECK(team IN ('CARDS', 'LOANS', 'OTHER')),
	subject TEXT NOT NULL,
	client_name TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('WAITING', 'ASSIGNED', 'COMPLETED')),
	agent_id TEXT,
	created_at DATETIME NOT NULL,
	assigned_at DATETIME,
	completed_at DATETIME,
	FOREIGN KEY (agent_id) REFERENCES agents(id)
);

CREATE INDEX IF NOT EXISTS idx_attendances_team ON attendances(team);
CREATE INDEX IF NOT EXISTS idx_attendances_status ON attendances(status);

-- Team backlogs (per-team FIFO, ordered by insertion position)
CREATE TABLE IF NOT EXISTS team_queues (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	team TEXT NOT NULL CHECK(team IN ('CARDS', 'LOANS', 'OTHER')),
	attendance_id INTEGER NOT NULL,
	FOREIGN KEY (attendance_id) REFERENCES attendances(id)
);

CREATE INDEX IF NOT EXISTS idx_team_queues_team ON team_queues(team);
`
