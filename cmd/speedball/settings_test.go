package main

import (
	"testing"

	"github.com/vovakirdan/speedball/internal/config"
	"github.com/vovakirdan/speedball/internal/settings"
)

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{"yes", true, false},
		{"off", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := parseSwitch(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSwitch(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSwitch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSettingsArgs(t *testing.T) {
	if err := settingsCmd.Args(settingsCmd, nil); err != nil {
		t.Errorf("no arguments should be accepted: %v", err)
	}
	if err := settingsCmd.Args(settingsCmd, []string{"audio", "off"}); err != nil {
		t.Errorf("name and value should be accepted: %v", err)
	}
	if err := settingsCmd.Args(settingsCmd, []string{"audio"}); err == nil {
		t.Error("a lone name should be rejected")
	}
}

func TestSettingApplier(t *testing.T) {
	tests := []struct {
		name, value string
		want        settings.Settings
		wantErr     bool
	}{
		{"audio", "off", settings.Settings{}, false},
		{"Sound", "on", settings.Settings{Audio: true}, false},
		{"debug", "yes", settings.Settings{Debug: true}, false},
		{"volume", "-1.5", settings.Settings{Volume: -1.5}, false},
		{"volume", "-7", settings.Settings{}, true},
		{"volume", "loud", settings.Settings{}, true},
		{"colour", "on", settings.Settings{}, true},
	}
	for _, tt := range tests {
		apply, err := settingApplier(tt.name, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("settingApplier(%q, %q) error = %v, wantErr %v", tt.name, tt.value, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		var got settings.Settings
		apply(&got)
		if got != tt.want {
			t.Errorf("settingApplier(%q, %q) applied %+v, want %+v", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestSprintOverride(t *testing.T) {
	base := config.DefaultSpeedballConfig().Sprint
	if got := sprintOverride(base, 0, 0); got != (config.SprintConfig{}) {
		t.Errorf("no flags should leave the ramp alone, got %+v", got)
	}

	got := sprintOverride(base, 800, 0)
	if got.AccelerationMS != 800 || got.TopSpeed != base.TopSpeed || got.DefaultSpeed != base.DefaultSpeed {
		t.Errorf("period flag applied wrong: %+v", got)
	}

	got = sprintOverride(base, 0, 30)
	if got.AccelerationMS != base.AccelerationMS || got.TopSpeed != 30 {
		t.Errorf("top speed flag applied wrong: %+v", got)
	}
}
