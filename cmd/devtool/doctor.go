package main

import (
	"fmt"
	"time"

	"github.com/osse101/DofusPlanner_Go/internal/bootstrap"
	"github.com/osse101/DofusPlanner_Go/internal/config"
	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (deps + db + catalog)"
}

func (c *DoctorCommand) Run(args []string) error {
	printHeader("Running Doctor...")

	hasError := false

	depsCmd := &CheckDepsCommand{}
	if err := depsCmd.Run(nil); err != nil {
		printErr("Dependencies check failed: %v", err)
		hasError = true
	} else {
		printOK("Dependencies OK")
	}

	cfg, err := config.Load()
	if err != nil {
		printErr("Config invalid: %v", err)
		return fmt.Errorf("doctor found issues")
	}

	if cfg.Storage == config.StorageMemory {
		printInfo("In-memory storage selected, skipping database check")
	} else if err := waitForDB(1, time.Second); err != nil {
		printErr("Database check failed: %v", err)
		hasError = true
	} else {
		printOK("Database OK")
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		printErr("Catalog check failed: %v", err)
		hasError = true
	} else {
		printOK("Catalog OK: %d items, %d recipes, %d jobs",
			len(cat.Items(domain.ItemFilter{})), len(cat.Recipes()), len(cat.Jobs()))
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	printOK("All systems operational!")
	return nil
}
