package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/speedball/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [audio|debug on|off] [volume <steps>]",
	Short: "Show or change saved settings",
	Long: `Without arguments, print the saved settings. With a name and a value,
change one of them. The terminal and window frontends read these at start
and save them when toggled in game. Volume is in base-2 steps between -6
and 2; 0 plays cues unscaled and -1 halves them.

Examples:
  speedball settings
  speedball settings audio off
  speedball settings debug on
  speedball settings volume -1`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or a name and a value, got %d", len(args))
		}
		return nil
	},
	Run: runSettings,
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q (want on or off)", v)
}

func parseVolume(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid volume %q", v)
	}
	if f < settings.MinVolume || f > settings.MaxVolume {
		return 0, fmt.Errorf("volume %v out of range [%d, %d]", f, settings.MinVolume, settings.MaxVolume)
	}
	return f, nil
}

func settingApplier(name, value string) (func(*settings.Settings), error) {
	name = strings.ToLower(name)
	if name == "volume" {
		vol, err := parseVolume(value)
		if err != nil {
			return nil, err
		}
		return func(s *settings.Settings) { s.Volume = vol }, nil
	}

	on, err := parseSwitch(value)
	if err != nil {
		return nil, err
	}
	switch name {
	case "audio", "sound":
		return func(s *settings.Settings) { s.Audio = on }, nil
	case "debug":
		return func(s *settings.Settings) { s.Debug = on }, nil
	}
	return nil, fmt.Errorf("unknown setting %q (want audio, debug or volume)", name)
}

func runSettings(_ *cobra.Command, args []string) {
	store, err := settings.Open(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 2 {
		apply, err := settingApplier(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := store.Update(apply); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("audio: %s\n", onOff(s.Audio))
	fmt.Printf("debug: %s\n", onOff(s.Debug))
	fmt.Printf("volume: %g\n", s.MasterVolume())
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
