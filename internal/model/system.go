package model

// VersionInfo reports the running build, the schema state and which ledger features are active.
type VersionInfo struct {
	AppVersion       string          `json:"app_version"`
	Commit           string          `json:"commit"`
	DbVersion        string          `json:"db_version"`
	LatestDbVersion  string          `json:"latest_db_version"`
	LedgerSource     string          `json:"ledger_source"`
	Features         map[string]bool `json:"features"`
	MigrationNeeded  bool            `json:"migration_needed"`
	MigrationMessage *string         `json:"migration_message,omitempty"`
}
