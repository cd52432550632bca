// Command nearestctl resolves keys against a table of numeric thresholds.
//
// The table is a YAML file:
//
//	rounding: down
//	entries:
//	  - key: 0
//	    value: freezing
//	  - key: 15
//	    value: mild
//	  - key: 25
//	    value: hot
//
// Each positional argument is looked up and printed with the key it resolved to:
//
//	nearestctl -table temps.yaml 3 18.5 40
//
// With -interactive the keys are prompted for instead, and so is the table file
// when -table is missing. Adding -prune first offers the table's keys to drop.
//
// Logs go to stderr; set NEARESTCTL_LOG_JSON=true for JSON lines.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/amp-labs/sortedcollections/logger"
)

const appName = "nearestctl"

func main() {
	jsonLogs, _ := strconv.ParseBool(os.Getenv("NEARESTCTL_LOG_JSON"))

	logger.ConfigureLogging(appName,
		logger.WithOutput(os.Stderr), logger.WithLevel(slog.LevelWarn), logger.WithJSON(jsonLogs))

	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Get().Error("nearestctl failed", "error", err)
		os.Exit(1)
	}
}
