package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr        string        // API bind address
	LogDir      string        // logs directory
	DatabaseURL string        // empty: memory; postgres://: pgx; anything else: sqlite path
	SeedFile    string        // optional YAML with initial targets/settings

	CronInterval time.Duration // 0 disables the scheduled trigger
	HTTPTimeout  time.Duration // probe client timeout; 0 keeps the client default
	DisplayTZ    string        // fixed timezone for log entry timestamps

	PublicAPIKeys []string
	AdminAPIKeys  []string

	PublicRPM   int
	PublicBurst int
	AdminRPM    int
	AdminBurst  int
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	cronInterval := 10 * time.Minute
	if v := os.Getenv("CRON_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cronInterval = d
		}
	}

	// no timeout on top of the HTTP client default unless asked for
	httpTimeout := time.Duration(0)
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			httpTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	tz := os.Getenv("DISPLAY_TZ")
	if tz == "" {
		tz = "UTC"
	}

	return Config{
		Addr:          addr,
		LogDir:        logDir,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SeedFile:      os.Getenv("SEED_FILE"),
		CronInterval:  cronInterval,
		HTTPTimeout:   httpTimeout,
		DisplayTZ:     tz,
		PublicAPIKeys: splitKeys(os.Getenv("PUBLIC_API_KEYS")),
		AdminAPIKeys:  splitKeys(os.Getenv("ADMIN_API_KEYS")),
		PublicRPM:     envInt("PUBLIC_RPM", 120),
		PublicBurst:   envInt("PUBLIC_BURST", 60),
		AdminRPM:      envInt("ADMIN_RPM", 60),
		AdminBurst:    envInt("ADMIN_BURST", 30),
	}
}

func splitKeys(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
