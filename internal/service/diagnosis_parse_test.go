package service

import (
	"strings"
	"testing"

	"ai-health-be/internal/constant"

	"github.com/stretchr/testify/require"
)

func TestFormatExplanation(t *testing.T) {
	got := formatExplanation(
		"Flu",
		"A viral infection.",
		"Influenza viruses.",
		[]string{"fever", "cough"},
		"",
		"en",
	)

	want := strings.Join([]string{
		"Disease: Flu",
		"",
		"Why it occurs:",
		"A viral infection.",
		"",
		"Causes:",
		"Influenza viruses.",
		"",
		"Common symptoms: fever, cough",
	}, "\n")
	require.Equal(t, want, got)

	// The heading tables carry their own colon; no section may double it.
	require.NotContains(t, got, "::")
}

func TestFormatExplanationWithNote(t *testing.T) {
	got := formatExplanation(
		"Dengue",
		"A mosquito-borne infection.",
		"Dengue virus.",
		[]string{"fever", "rash"},
		"High fever with rash changed the assessment.",
		"en",
	)

	require.Contains(t, got, "Common symptoms: fever, rash")
	require.True(t, strings.HasSuffix(got, "Note: High fever with rash changed the assessment."))
}

func TestFormatExplanationMissingSections(t *testing.T) {
	fallbacks := constant.GetFallbackMessages("en")

	got := formatExplanation("Flu", "", "  ", []string{"fever"}, "", "en")

	require.Contains(t, got, "Why it occurs:\n"+fallbacks.InfoNotAvailable)
	require.Contains(t, got, "Causes:\n"+fallbacks.InfoNotAvailable)
	require.NotContains(t, got, "Note:")
}

func TestFormatExplanationLocalizedHeadings(t *testing.T) {
	headings := constant.GetExplanationHeadings("hi")

	got := formatExplanation("Flu", "w", "c", []string{"fever"}, "reason", "hi")

	require.Contains(t, got, headings.Disease+" Flu")
	require.Contains(t, got, headings.CommonSymptoms+" fever")
	require.Contains(t, got, headings.Note+" reason")
	require.NotContains(t, got, "::")
}
