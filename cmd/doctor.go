package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/todo"
)

// doctorCommand checks the configuration, the store, and the stored list.
func doctorCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("todo doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg := cws.Config

	fmt.Println("Todo Doctor")
	fmt.Println("===========")
	fmt.Println()

	allOK := true

	fmt.Println("Config:")
	if len(cws.Files) == 0 {
		fmt.Println("  ✅ Files: none (defaults)")
	}
	for _, f := range cws.Files {
		fmt.Printf("  ✅ File: %s\n", f)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Printf("  ✅ Backend: %s\n", cfg.Backend)
		fmt.Printf("  ✅ Storage key: %s\n", cfg.StorageKey)
		fmt.Printf("  ✅ Reorder: %t\n", cfg.Reorder)
	}
	fmt.Println()

	fmt.Printf("Data directory: %s\n", cfg.DataDir)
	if info, err := os.Stat(cfg.DataDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first save)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Println("  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if path := storePath(cfg); path != "" {
		fmt.Printf("Store: %s\n", path)
	} else {
		fmt.Printf("Store: %s\n", cfg.Backend)
	}
	if !checkStore(cfg, *verbose) {
		allOK = false
	}
	fmt.Println()

	fmt.Printf("Log directory: %s\n", cfg.LogDir)
	if _, err := os.Stat(cfg.LogDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created by tui or serve)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Todo may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// checkStore opens the store and validates the stored value, printing one
// line per finding. A store that does not exist yet is reported without
// opening it, since opening creates it.
func checkStore(cfg *config.Config, verbose bool) bool {
	if path := storePath(cfg); path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("  ⚠️  No stored list (starts empty)")
				return true
			}
			fmt.Printf("  ❌ Error: %v\n", err)
			return false
		}
	}

	kv, store, err := openStore(cfg)
	if err != nil {
		fmt.Printf("  ❌ Open error: %v\n", err)
		return false
	}
	defer func() { _ = kv.Close() }()

	data, ok, err := store.Raw()
	if err != nil {
		fmt.Printf("  ❌ Read error: %v\n", err)
		return false
	}
	if !ok {
		fmt.Println("  ⚠️  No stored list (starts empty)")
		return true
	}
	fmt.Println("  ✅ Reachable")

	result := todo.ValidateBlob(data, todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
	for _, w := range result.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	if !result.Valid {
		fmt.Println("  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Printf("     - %v\n", e)
		}
		return false
	}
	fmt.Printf("  ✅ Valid (%d tasks)\n", result.Tasks)

	if verbose {
		tasks, err := todo.Unmarshal(data)
		if err != nil {
			fmt.Printf("  ❌ %v\n", err)
			return false
		}
		for _, t := range tasks {
			fmt.Printf("    - %s\n", t.Line())
		}
	}
	return true
}

// storePath returns the on-disk location of the configured backend, or ""
// when it keeps nothing on disk.
func storePath(cfg *config.Config) string {
	switch cfg.Backend {
	case config.BackendSQLite:
		return cfg.DBFile()
	case config.BackendFile:
		return cfg.DataFile()
	}
	return ""
}
