package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/profiles"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

func expectedScore(t *testing.T, withFull bool) types.ScoreResult {
	t.Helper()
	resume, err := profiles.LoadResumeProfile(fixture("valid", "resume_profile.json"))
	require.NoError(t, err)
	ideal, err := profiles.LoadIdealProfile(fixture("valid", "ideal_profile.json"))
	require.NoError(t, err)
	var full *types.ResumeProfile
	if withFull {
		full, err = profiles.LoadResumeProfile(fixture("valid", "full_profile.json"))
		require.NoError(t, err)
	}
	return scoring.ScoreAll(resume, ideal, full)
}

func TestScoreCommand_Stdout(t *testing.T) {
	stdout, _, err := execute(t, nil, "score",
		"--resume", fixture("valid", "resume_profile.json"),
		"--ideal", fixture("valid", "ideal_profile.json"),
	)
	require.NoError(t, err)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result), "stdout should be only the JSON document")

	expected := expectedScore(t, false)
	assert.Equal(t, expected.Composite, result.Composite)
	assert.Equal(t, expected.KeywordScore, result.KeywordScore)
	assert.Nil(t, result.MaxAchievable)
	assert.True(t, result.IsEstimate)
}

func TestScoreCommand_WithFullProfileToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "nested", "score.json")

	stdout, _, err := execute(t, nil, "score",
		"-r", fixture("valid", "resume_profile.json"),
		"-i", fixture("valid", "ideal_profile.json"),
		"-f", fixture("valid", "full_profile.json"),
		"-o", outFile,
	)
	require.NoError(t, err)

	expected := expectedScore(t, true)
	assert.Contains(t, stdout, "Output: "+outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(data, &result))
	require.NotNil(t, result.MaxAchievable)
	assert.Equal(t, *expected.MaxAchievable, *result.MaxAchievable)
	assert.Equal(t, expected.Composite, result.Composite)
}

func TestScoreCommand_VerboseGoesToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, nil, "score",
		"--resume", fixture("valid", "resume_profile.json"),
		"--ideal", fixture("valid", "ideal_profile.json"),
		"--verbose",
	)
	require.NoError(t, err)

	assert.Contains(t, stderr, "ATS SCORE")
	assert.Contains(t, stderr, "KEYWORD USAGE")
	assert.NotContains(t, stdout, "ATS SCORE")
	assert.True(t, json.Valid([]byte(stdout)))
}

func TestScoreCommand_MissingRequiredFlags(t *testing.T) {
	_, _, err := execute(t, nil, "score", "--resume", fixture("valid", "resume_profile.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestScoreCommand_InvalidInputFile(t *testing.T) {
	_, _, err := execute(t, nil, "score",
		"--resume", "/nonexistent/file.json",
		"--ideal", fixture("valid", "ideal_profile.json"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resume profile")
}

func TestScoreCommand_InvalidIdealProfile(t *testing.T) {
	_, _, err := execute(t, nil, "score",
		"--resume", fixture("valid", "resume_profile.json"),
		"--ideal", fixture("invalid", "ideal_profile_bad_importance.json"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load ideal profile")
}

func TestScoreCommand_Binary(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score",
		"--resume", fixture("valid", "resume_profile.json"),
		"--ideal", fixture("valid", "ideal_profile.json"),
	)
	output, err := cmd.Output()
	require.NoError(t, err)
	assert.True(t, json.Valid(output))
}
