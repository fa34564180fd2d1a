package db

// schema holds the CREATE TABLE statements for the five record collections
// plus the read-only user directory. Insertion order is the collection order,
// carried by rowid. Denormalized *_name columns are display caches and are
// deliberately not foreign-key enforced.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL,
		role   TEXT NOT NULL CHECK(role IN ('admin','abogado')),
		avatar TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		contact_name  TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		address       TEXT NOT NULL DEFAULT '',
		project_count INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		client_id   TEXT NOT NULL,
		client_name TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL,
		status      TEXT NOT NULL CHECK(status IN ('Activo','En Espera','Completado')),
		priority    TEXT NOT NULL CHECK(priority IN ('Baja','Media','Alta','Critica')),
		assigned_to TEXT NOT NULL DEFAULT '',
		due_date    TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		juzgado     TEXT NOT NULL DEFAULT '',
		expediente  TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		avance      TEXT NOT NULL DEFAULT '',
		progress    INTEGER NOT NULL DEFAULT 0,
		budget      REAL NOT NULL DEFAULT 0,
		team        TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		project_id       TEXT NOT NULL,
		project_name     TEXT NOT NULL DEFAULT '',
		assigned_to      TEXT NOT NULL DEFAULT '',
		assigned_to_name TEXT NOT NULL DEFAULT '',
		priority         TEXT NOT NULL CHECK(priority IN ('Baja','Media','Alta','Critica')),
		status           TEXT NOT NULL CHECK(status IN ('Pendiente','En Progreso','Completada','Vencida')),
		due_date         TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		hours_logged     REAL NOT NULL DEFAULT 0,
		avance           TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS task_alerts (
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		alert_date TEXT NOT NULL,
		alert_time TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS task_updates (
		id      TEXT PRIMARY KEY,
		task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		date    TEXT NOT NULL,
		content TEXT NOT NULL,
		author  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL,
		task_title   TEXT NOT NULL DEFAULT '',
		project_name TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL,
		user_name    TEXT NOT NULL DEFAULT '',
		date         TEXT NOT NULL,
		hours        REAL NOT NULL,
		billable     INTEGER NOT NULL DEFAULT 1,
		description  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL CHECK(type IN ('vencimiento','asignacion','recordatorio')),
		title       TEXT NOT NULL,
		message     TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL,
		read        INTEGER NOT NULL DEFAULT 0,
		target_role TEXT NOT NULL DEFAULT '',
		link_to     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_client ON projects(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assigned_to)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_user ON time_entries(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_task_updates_task ON task_updates(task_id)`,
}
