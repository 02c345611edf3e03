package i18n_test

import (
	"strings"
	"testing"

	"binclock/internal/infrastructure/i18n"
)

func TestTranslatorLocalizes(t *testing.T) {
	tr := i18n.NewTranslator("en")

	testCases := []struct {
		locale string
		key    string
		want   string
	}{
		{"en", "app.title", "Binary clock"},
		{"fr", "app.title", "Horloge binaire"},
		{"de", "app.title", "Binäruhr"},
		{"fr-FR", "clock.hours", "Heures"},
		{"de-AT", "clock.seconds", "Sekunden"},
	}
	for _, tc := range testCases {
		if got := tr.T(tc.locale, tc.key, nil); got != tc.want {
			t.Errorf("T(%q, %q) = %q, want %q", tc.locale, tc.key, got, tc.want)
		}
	}
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := i18n.NewTranslator("en")

	// Unsupported locale falls back to the default catalog, never empty.
	if got := tr.T("es", "app.title", nil); got != "Binary clock" {
		t.Errorf("T(es) = %q, want English fallback", got)
	}
	if got := tr.T("", "clock.minutes", nil); got != "Minutes" {
		t.Errorf("T(empty locale) = %q, want Minutes", got)
	}
}

func TestTranslatorMissingKeyReturnsKey(t *testing.T) {
	tr := i18n.NewTranslator("en")
	if got := tr.T("en", "no.such.message", nil); got != "no.such.message" {
		t.Errorf("missing key rendered as %q", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Errorf("empty key rendered as %q", got)
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := i18n.NewTranslator("en")
	got := tr.T("en", "snapshot.written", map[string]any{"Path": "/tmp/clock.png"})
	if !strings.Contains(got, "/tmp/clock.png") {
		t.Errorf("template data not substituted: %q", got)
	}
}

func TestTranslatorBadDefaultLocale(t *testing.T) {
	// An unparseable default collapses to English instead of failing.
	tr := i18n.NewTranslator("???")
	if got := tr.T("", "app.title", nil); got != "Binary clock" {
		t.Errorf("T with bad default = %q", got)
	}
}

func TestDetectLocaleNeverEmpty(t *testing.T) {
	if got := i18n.DetectLocale(); got == "" {
		t.Error("DetectLocale returned empty string")
	}
}
