package progress

import (
	"testing"
	"time"
)

func TestEnvFlag(t *testing.T) {
	tests := []struct {
		raw       string
		value, ok bool
	}{
		{"1", true, true},
		{"yes", true, true},
		{"ON", true, true},
		{"0", false, true},
		{"no", false, true},
		{"Off", false, true},
		{" true ", true, true},
		{"2", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.raw, func(t *testing.T) {
			t.Setenv("TEST_PROGRESS_FLAG", tt.raw)
			value, ok := envFlag("TEST_PROGRESS_FLAG")
			if value != tt.value || ok != tt.ok {
				t.Errorf("envFlag(%q) = %v, %v, want %v, %v", tt.raw, value, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestEnvMinPollInterval(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"250ms", 250 * time.Millisecond},
		{"2s", 2 * time.Second},
		{"0.25", 250 * time.Millisecond},
		{"1", time.Second},
		{"garbage", 0},
		{"-1s", 0},
	}

	for _, tt := range tests {
		t.Run("value "+tt.raw, func(t *testing.T) {
			t.Setenv("PROGRESS_MINIMUM_UPDATE_INTERVAL", tt.raw)
			if got := envMinPollInterval(); got != tt.want {
				t.Errorf("envMinPollInterval() = %v, want %v", got, tt.want)
			}
		})
	}
}
