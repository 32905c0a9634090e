package config

// TeamConfig describes one side of the manual generate action.
type TeamConfig struct {
	ID         string
	Name       string
	ShortCode  string
	Count      int
	IDPrefix   string
	NamePrefix string
	JerseyFrom int
}

// GeneratorConfig mirrors the manual generate form.
type GeneratorConfig struct {
	HomeTeamID     string `env:"HOME_TEAM_ID" envDefault:"HOME"`
	HomeTeamName   string `env:"HOME_TEAM_NAME" envDefault:"Home Team"`
	HomeShortCode  string `env:"HOME_SHORT_CODE" envDefault:"HOME"`
	HomeCount      int    `env:"HOME_COUNT" envDefault:"11"`
	HomeIDPrefix   string `env:"HOME_ID_PREFIX" envDefault:"H"`
	HomeNamePrefix string `env:"HOME_NAME_PREFIX" envDefault:"Home Player "`
	HomeJerseyFrom int    `env:"HOME_JERSEY_START" envDefault:"1"`

	AwayTeamID     string `env:"AWAY_TEAM_ID" envDefault:"AWAY"`
	AwayTeamName   string `env:"AWAY_TEAM_NAME" envDefault:"Away Team"`
	AwayShortCode  string `env:"AWAY_SHORT_CODE" envDefault:"AWAY"`
	AwayCount      int    `env:"AWAY_COUNT" envDefault:"11"`
	AwayIDPrefix   string `env:"AWAY_ID_PREFIX" envDefault:"A"`
	AwayNamePrefix string `env:"AWAY_NAME_PREFIX" envDefault:"Away Player "`
	AwayJerseyFrom int    `env:"AWAY_JERSEY_START" envDefault:"1"`

	AutoIDs      bool   `env:"AUTO_GENERATE_IDS" envDefault:"true"`
	IDStart      int    `env:"ID_START_NUMBER" envDefault:"1"`
	IDDigits     int    `env:"ID_DIGITS" envDefault:"4"`
	CustomIDFile string `env:"CUSTOM_ID_LIST"`

	InterceptRadius float64 `env:"DEFAULT_INTERCEPT_RADIUS" envDefault:"1.25"`
	GeneratePrefab  bool    `env:"GENERATE_PREFAB" envDefault:"true"`
	PrefabName      string  `env:"PREFAB_NAME" envDefault:"SnowmanPlayer.prefab"`
}

// Home returns the home side of the form.
func (g GeneratorConfig) Home() TeamConfig {
	return TeamConfig{
		ID:         g.HomeTeamID,
		Name:       g.HomeTeamName,
		ShortCode:  g.HomeShortCode,
		Count:      g.HomeCount,
		IDPrefix:   g.HomeIDPrefix,
		NamePrefix: g.HomeNamePrefix,
		JerseyFrom: g.HomeJerseyFrom,
	}
}

// Away returns the away side of the form.
func (g GeneratorConfig) Away() TeamConfig {
	return TeamConfig{
		ID:         g.AwayTeamID,
		Name:       g.AwayTeamName,
		ShortCode:  g.AwayShortCode,
		Count:      g.AwayCount,
		IDPrefix:   g.AwayIDPrefix,
		NamePrefix: g.AwayNamePrefix,
		JerseyFrom: g.AwayJerseyFrom,
	}
}

// ImportConfig controls roster import behaviour.
type ImportConfig struct {
	EnsurePrefab bool `env:"IMPORT_ENSURE_PREFAB" envDefault:"true"`
}

// SpawnConfig controls scene spawning after generate/import.
type SpawnConfig struct {
	Enabled   bool      `env:"AUTO_SPAWN" envDefault:"false"`
	ScenePath string    `env:"SCENE_PATH" envDefault:"scene.yaml"`
	RootName  string    `env:"RUNTIME_ROOT_NAME" envDefault:"FootballRuntime"`
	Spacing   float64   `env:"SPAWN_SPACING" envDefault:"2.2"`
	Origin    []float64 `env:"SPAWN_ORIGIN" envDefault:"-12,0,-6" envSeparator:","`
}

// OriginXYZ returns the spawn origin, padding missing components with zero.
func (s SpawnConfig) OriginXYZ() (x, y, z float64) {
	var v [3]float64
	copy(v[:], s.Origin)
	return v[0], v[1], v[2]
}
