package store

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per classified workbook
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    path TEXT NOT NULL,
    started_at TEXT NOT NULL,      -- RFC 3339, UTC
    duration_ms INTEGER NOT NULL DEFAULT 0,
    sheet_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_path ON runs(path);

-- One row per emitted sheet, in output order
CREATE TABLE IF NOT EXISTS sheet_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run INTEGER NOT NULL,
    position INTEGER NOT NULL,
    sheet_name TEXT NOT NULL,
    first_row INTEGER NOT NULL,
    first_col INTEGER NOT NULL,
    end_row INTEGER NOT NULL,
    end_col INTEGER NOT NULL,
    total_cells INTEGER NOT NULL,
    data_cells INTEGER NOT NULL,
    density REAL NOT NULL,
    visible TEXT NOT NULL,
    first_row_first_col_content TEXT,
    last_row_first_col_content TEXT,
    data_type_mix REAL NOT NULL,
    column_data_types TEXT NOT NULL, -- JSON array of column profiles
    row_type_consistency REAL NOT NULL,
    aspect_ratio REAL NOT NULL,
    sheet_type TEXT NOT NULL,        -- Data, Form, Unknown
    classification_reason TEXT NOT NULL,
    FOREIGN KEY (run) REFERENCES runs(id) ON DELETE CASCADE,
    UNIQUE (run, position)
);

CREATE INDEX IF NOT EXISTS idx_sheet_results_type ON sheet_results(sheet_type);
`
