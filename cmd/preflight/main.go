// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("PUBLIC_API_KEYS"))
	addr := strings.TrimSpace(os.Getenv("ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	interval := strings.TrimSpace(os.Getenv("CRON_INTERVAL"))
	seed := strings.TrimSpace(os.Getenv("SEED_FILE"))
	tz := strings.TrimSpace(os.Getenv("DISPLAY_TZ"))

	if admin == "" {
		warn("ADMIN_API_KEYS is empty — mutating routes and /api/run will be open.")
	}
	if pub == "" {
		warn("PUBLIC_API_KEYS is empty — read routes will be open.")
	}

	for name, v := range map[string]string{"ADMIN_API_KEYS": admin, "PUBLIC_API_KEYS": pub} {
		if strings.Contains(v, " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if addr == "" {
		warn("ADDR is empty; the default bind address will be used.")
	} else {
		ok("ADDR=" + addr)
	}

	if db == "" {
		warn("DATABASE_URL empty — targets, settings and logs will live in memory only.")
	} else {
		ok("DATABASE_URL present")
	}

	if interval != "" {
		if d, err := time.ParseDuration(interval); err != nil {
			fail("CRON_INTERVAL is not a duration (e.g. 10m): " + interval)
		} else if d == 0 {
			warn("CRON_INTERVAL=0 — scheduled pings disabled, only /api/run will execute.")
		} else {
			ok("CRON_INTERVAL=" + d.String())
		}
	}

	if seed != "" {
		if _, err := os.Stat(seed); err != nil {
			fail("SEED_FILE not readable: " + seed)
		}
		ok("SEED_FILE=" + seed)
	}

	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			fail("DISPLAY_TZ unknown: " + tz)
		}
		ok("DISPLAY_TZ=" + tz)
	}

	ok("preflight passed")
}
