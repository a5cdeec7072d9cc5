package main

import (
	"fmt"
	"os"

	"github.com/modkeeper/modkeeper/cmd"
	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/config"
	apperrors "github.com/modkeeper/modkeeper/internal/errors"
	"github.com/modkeeper/modkeeper/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	defer func() { _ = logging.ShutdownGlobal() }()
	defer func() {
		if err := runtimes.Close(); err != nil {
			colors.Warning(fmt.Sprintf("close storage: %v", err))
		}
	}()

	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	if err := cmd.Execute(); err != nil {
		apperrors.Report(apperrors.NewDefaultCLIHandler(), "", err)
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		return 1
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
	return 0
}
