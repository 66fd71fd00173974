package config

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/calendar"
	"github.com/Astemirdum/movie-rental/pkg/database"
	"github.com/Astemirdum/movie-rental/pkg/kafka"
	"github.com/Astemirdum/movie-rental/pkg/logger"
	"github.com/Astemirdum/movie-rental/rental/internal/service/creditcheck"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RENTAL_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"RENTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// SkipDay is a weekday read from the environment by name, e.g. "sunday" or "Sun".
type SkipDay time.Weekday

func (d *SkipDay) Decode(value string) error {
	day, err := calendar.ParseWeekday(value)
	if err != nil {
		return err
	}
	*d = SkipDay(day)
	return nil
}

func (d SkipDay) Weekday() time.Weekday { return time.Weekday(d) }

func (d SkipDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(d.Weekday().String()))
}

type Rental struct {
	SkipDay SkipDay `yaml:"skipDay" envconfig:"RENTAL_SKIP_DAY" default:"sunday"`
}

type Overdue struct {
	// Interval between overdue sweeps; zero turns the scanner off.
	Interval time.Duration `yaml:"interval" envconfig:"OVERDUE_SCAN_INTERVAL" default:"1h"`
}

type Config struct {
	Server      HTTPServer  `yaml:"server"`
	Database    database.DB `yaml:"db"`
	Kafka       kafka.Config
	CreditCheck creditcheck.Config
	Rental      Rental     `yaml:"rental"`
	Overdue     Overdue    `yaml:"overdue"`
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied first, so
// values set in the environment take precedence.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	c := *cfg
	c.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(c, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
