package config

// Storage backends.
const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StorageConfig selects where records are persisted.
type StorageConfig struct {
	Backend     string `env:"STORAGE_BACKEND" envDefault:"fs"`
	ProjectRoot string `env:"PROJECT_ROOT" envDefault:"."`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"footballgen.db"`
}

// FolderConfig holds the base folders records are written under.
type FolderConfig struct {
	Teams   string `env:"TEAMS_FOLDER" envDefault:"Assets/_Project/ScriptableObjects/Teams"`
	Players string `env:"PLAYERS_FOLDER" envDefault:"Assets/_Project/ScriptableObjects/Players"`
	Prefabs string `env:"PREFABS_FOLDER" envDefault:"Assets/_Project/Prefabs/Player"`
}
