package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmark.dev/pkg/classmark/internal/domain"
	m "classmark.dev/pkg/classmark/internal/model"
)

// workflowStub captures the arguments commands dispatch to the workflow.
type workflowStub struct {
	annotate []domain.AnnotateArgs
	estimate []domain.EstimateArgs
	view     []domain.ViewArgs
	err      error
}

func (w *workflowStub) Annotate(_ context.Context, args domain.AnnotateArgs) error {
	w.annotate = append(w.annotate, args)
	return w.err
}

func (w *workflowStub) Estimate(_ context.Context, args domain.EstimateArgs) error {
	w.estimate = append(w.estimate, args)
	return w.err
}

func (w *workflowStub) View(_ context.Context, args domain.ViewArgs) error {
	w.view = append(w.view, args)
	return w.err
}

// swapWorkflow installs a stub workflow for the duration of the test.
func swapWorkflow(t *testing.T, stub domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = stub
	t.Cleanup(func() { workflow = original })
}

// newTestRootCmd builds a fresh root command with persistent flags so tests
// do not share flag state through the package-level rootCmd.
func newTestRootCmd(children ...*cobra.Command) *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	for _, child := range children {
		cmd.AddCommand(child)
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"classes"}, []m.Path{m.Path("classes")}},
		{
			"multiple",
			[]string{"a.yaml", "b.yaml", "classes"},
			[]m.Path{m.Path("a.yaml"), m.Path("b.yaml"), m.Path("classes")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionConfig(t *testing.T) {
	viper.Set(markerConfigKey, "com.example.Generated")
	viper.Set(visibleConfigKey, false)
	t.Cleanup(func() {
		viper.Set(markerConfigKey, defaultMarker)
		viper.Set(visibleConfigKey, defaultVisible)
	})

	config := sessionConfig()
	assert.Equal(t, "com.example.Generated", config.Marker)
	assert.False(t, config.Visible)
}

func TestNewRootCmd(t *testing.T) {
	cmd := baseRootCmd()
	assert.Equal(t, "classmark", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := baseRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "compiler-generated methods")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, documentAdapter)
	assert.NotNil(t, diagnosticSink)
	assert.NotNil(t, workflow)
}
