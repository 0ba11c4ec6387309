package common

import (
	"flag"
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"os"
)

const (
	DefaultLocale            = "en"
	DefaultEventBusQueueSize = 100
	DefaultDatabaseFile      = "asset-viewer.db"
)

type Params struct {
	logLevel          string
	locale            string
	maxCount          int
	reviewSelected    bool
	eventBusQueueSize int
	debug             bool
	databaseFile      string
	configFile        string
	rootPath          string
}

// fileParams is the optional TOML config file. Absent keys keep the
// flag defaults.
type fileParams struct {
	LogLevel          *string `toml:"logLevel"`
	Locale            *string `toml:"locale"`
	MaxCount          *int    `toml:"maxCount"`
	ReviewSelected    *bool   `toml:"reviewSelected"`
	EventBusQueueSize *int    `toml:"eventBusQueueSize"`
	Debug             *bool   `toml:"debug"`
	DatabaseFile      *string `toml:"databaseFile"`
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:          "",
		locale:            DefaultLocale,
		maxCount:          0,
		reviewSelected:    false,
		eventBusQueueSize: DefaultEventBusQueueSize,
		debug:             false,
		databaseFile:      DefaultDatabaseFile,
		configFile:        "",
		rootPath:          "",
	}
}

func ParseParams() *Params {
	params, err := ParseParamsFrom(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return params
}

// ParseParamsFrom parses command line arguments. Flags given on the
// command line override the values of the config file.
func ParseParamsFrom(args []string) (*Params, error) {
	flags := flag.NewFlagSet("asset-viewer", flag.ContinueOnError)
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	locale := flags.String("locale", DefaultLocale, "Locale used for album names, e.g. zh or en-US")
	maxCount := flags.Int("maxCount", 0, "Maximum number of selected assets. 0 for unlimited")
	reviewSelected := flags.Bool("reviewSelected", false, "Preview only the already selected assets")
	eventBusQueueSize := flags.Int("eventBusQueueSize", DefaultEventBusQueueSize, "Queue size of each event bus subscriber")
	debug := flags.Bool("debug", false, "Fail hard on contract violations")
	databaseFile := flags.String("databaseFile", DefaultDatabaseFile, "Session history database file name")
	configFile := flags.String("config", "", "Optional TOML config file")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if *maxCount < 0 {
		return nil, fmt.Errorf("maxCount must not be negative: %d", *maxCount)
	}

	params := &Params{
		logLevel:          *logLevel,
		locale:            *locale,
		maxCount:          *maxCount,
		reviewSelected:    *reviewSelected,
		eventBusQueueSize: *eventBusQueueSize,
		debug:             *debug,
		databaseFile:      *databaseFile,
		configFile:        *configFile,
		rootPath:          flags.Arg(0),
	}

	if params.configFile != "" {
		explicit := map[string]bool{}
		flags.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})
		if err := params.applyConfigFile(explicit); err != nil {
			return nil, err
		}
	}

	return params, nil
}

func (s *Params) applyConfigFile(explicit map[string]bool) error {
	data, err := os.ReadFile(s.configFile)
	if err != nil {
		return fmt.Errorf("could not read config file '%s': %w", s.configFile, err)
	}

	var file fileParams
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("could not parse config file '%s': %w", s.configFile, err)
	}

	if file.LogLevel != nil && !explicit["logLevel"] {
		s.logLevel = *file.LogLevel
	}
	if file.Locale != nil && !explicit["locale"] {
		s.locale = *file.Locale
	}
	if file.MaxCount != nil && !explicit["maxCount"] {
		if *file.MaxCount < 0 {
			return fmt.Errorf("maxCount must not be negative: %d", *file.MaxCount)
		}
		s.maxCount = *file.MaxCount
	}
	if file.ReviewSelected != nil && !explicit["reviewSelected"] {
		s.reviewSelected = *file.ReviewSelected
	}
	if file.EventBusQueueSize != nil && !explicit["eventBusQueueSize"] {
		s.eventBusQueueSize = *file.EventBusQueueSize
	}
	if file.Debug != nil && !explicit["debug"] {
		s.debug = *file.Debug
	}
	if file.DatabaseFile != nil && !explicit["databaseFile"] {
		s.databaseFile = *file.DatabaseFile
	}
	return nil
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) Locale() string {
	return s.locale
}

func (s *Params) MaxCount() int {
	return s.maxCount
}

func (s *Params) ReviewSelected() bool {
	return s.reviewSelected
}

func (s *Params) EventBusQueueSize() int {
	return s.eventBusQueueSize
}

func (s *Params) Debug() bool {
	return s.debug
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) RootPath() string {
	return s.rootPath
}
