package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every level",
	Long: `Loads level files starting at the first index until the next file
is missing, and reports every level that fails to load or validate.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fsys, cache := newCache()
	out := cmd.OutOrStdout()

	var checked, failed int
	for index := config.Level.First; ; index++ {
		file := path.Join(config.Level.Dir, fmt.Sprintf(config.Level.Pattern, index))
		if _, err := fs.Stat(fsys, file); err != nil {
			break
		}
		checked++

		reg, err := cache.Load(index)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %s\n", file, describe(err))
			continue
		}
		fmt.Fprintf(out, "ok   %s: %dx%d tiles, %d safe, %d trigger, %d gravity, %d collision objects\n",
			file, reg.WidthInTiles(), reg.HeightInTiles(),
			len(reg.SafeAreas()), len(reg.TriggerAreas()), len(reg.GravityAreas()), len(reg.CollisionObjects()))
	}

	if checked == 0 {
		return fmt.Errorf("no levels found matching %s", path.Join(config.Level.Dir, config.Level.Pattern))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, checked)
	}
	return nil
}

func describe(err error) string {
	var loadErr *leveldata.MapLoadError
	var invalid *leveldata.InvalidLevelError
	switch {
	case errors.As(err, &invalid):
		if invalid.Err != nil {
			return fmt.Sprintf("invalid: %s: %v", invalid.Reason, invalid.Err)
		}
		return "invalid: " + invalid.Reason
	case errors.As(err, &loadErr):
		return "unreadable: " + loadErr.Err.Error()
	}
	return err.Error()
}
