package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr   string
	LogLevel     string
	MaxCPU       int
	ShutdownWait time.Duration
	MetricsAddr  string
	CORSOrigins  []string

	OONIBaseURL string
	OONITimeout time.Duration

	MLabEnabled     bool
	GCPProject      string
	CredentialsFile string
}

// LoadDotEnv reads .env files into the process environment. Missing files are ignored
// and variables already set in the environment win.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

func Parse() (*Config, error) {
	var errs []error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":8000")
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.MaxCPU = mustInt(getenv("MAX_CPU", "0"))
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"))
	c.MetricsAddr = getenv("METRICS_ADDR", "")
	c.CORSOrigins = splitList(getenv("CORS_ORIGINS", "*"))

	c.OONIBaseURL = strings.TrimRight(getenv("OONI_BASE_URL", "https://api.ooni.io"), "/")
	timeout, err := time.ParseDuration(getenv("OONI_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		errs = append(errs, fmt.Errorf("OONI_TIMEOUT must be a positive duration"))
	}
	c.OONITimeout = timeout

	c.MLabEnabled = mustBool(getenv("MLAB_ENABLED", "false"))
	c.GCPProject = getenv("GOOGLE_CLOUD_PROJECT", "")
	c.CredentialsFile = getenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	if u, err := url.Parse(c.OONIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("OONI_BASE_URL must be an absolute URL"))
	}
	if c.MLabEnabled && c.GCPProject == "" {
		errs = append(errs, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when MLAB_ENABLED=true"))
	}
	if len(errs) > 0 {
		return nil, joinErrs(errs)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func mustInt(s string) int   { n, _ := strconv.Atoi(s); return n }
func mustBool(s string) bool { b, _ := strconv.ParseBool(s); return b }
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return time.Second
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinErrs(errs []error) error {
	msg := ""
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return fmt.Errorf("%s", msg)
}
