package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbelmont/intake/internal/domain"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedAssessment submits one assessment through the service and returns
// its record.
func seedAssessment(t *testing.T, app *App) *domain.Record {
	t.Helper()
	injuries := "yes"
	rec, err := app.Assessments.Submit(context.Background(), domain.Submission{
		Sport:           "cricket",
		Age:             31,
		ExperienceLevel: string(domain.ExperienceAdvanced),
		TrainingDays:    string(domain.TrainingDays4to5),
		Injuries:        &injuries,
		Equipment:       []string{string(domain.TierBasic)},
		EquipmentItems:  []string{"dumbbell", "bench"},
	})
	require.NoError(t, err)
	return rec
}

func TestListCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No assessments yet")
}

func TestListCmd_PrintsStoredAssessments(t *testing.T) {
	app := testApp(t)
	rec := seedAssessment(t, app)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, rec.ID[:8])
	assert.Contains(t, out, "cricket")
}

func TestShowCmd_FullID(t *testing.T) {
	app := testApp(t)
	rec := seedAssessment(t, app)

	out, err := executeCmd(t, app, "show", rec.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "cricket")
	assert.Contains(t, out, "31")
	assert.Contains(t, out, "dumbbell")
}

func TestShowCmd_AbbreviatedID(t *testing.T) {
	app := testApp(t)
	rec := seedAssessment(t, app)

	out, err := executeCmd(t, app, "show", rec.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "cricket")
}

func TestShowCmd_NotFound(t *testing.T) {
	app := testApp(t)
	seedAssessment(t, app)

	_, err := executeCmd(t, app, "show", "ffffffff")
	assert.Error(t, err)
}

func TestAssessCmd_NonInteractiveFails(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app, "assess")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "intake")
}
