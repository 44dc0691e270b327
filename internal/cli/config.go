package cli

// Config stores options for a generation run.
type Config struct {
	Input       string
	OutDir      string
	Watch       bool
	LogLevel    string
	LogFormat   string
	ConfigFile  string
	ShowVersion bool
}
