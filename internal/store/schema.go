package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS presets (
    name                 TEXT PRIMARY KEY,
    params_yaml          TEXT NOT NULL,
    years                INTEGER NOT NULL,
    home_price           TEXT NOT NULL,
    monthly_rent         TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    preset_name          TEXT REFERENCES presets(name) ON DELETE SET NULL,
    final_net_worth_buy  TEXT NOT NULL,
    final_net_worth_rent TEXT NOT NULL,
    total_interest_paid  TEXT NOT NULL,
    total_rent_paid      TEXT NOT NULL,
    buy_wins             INTEGER NOT NULL DEFAULT 0,
    ran_at               TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_preset ON runs(preset_name);
CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
`
