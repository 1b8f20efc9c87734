package cmd

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/nibzard/todo-go/internal/config"
)

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("todo config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example configuration file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Print(config.ExampleConfig())
		return nil
	}

	cfg := cws.Config
	values := map[string]any{
		"backend":        cfg.Backend,
		"data_dir":       cfg.DataDir,
		"storage_key":    cfg.StorageKey,
		"schema_file":    cfg.SchemaFile,
		"reorder":        cfg.Reorder,
		"log_dir":        cfg.LogDir,
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
		"log_timestamps": cfg.LogTimestamps,
		"log_caller":     cfg.LogCaller,
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if file := cws.GetConfigFile(); file != "" {
		fmt.Printf("Config file: %s\n\n", file)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%v\t(%s)\n", k, values[k], cws.Sources[k])
	}
	return tw.Flush()
}
