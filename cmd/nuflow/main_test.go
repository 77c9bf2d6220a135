package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nuflow "+version+"\n", out)
}

func TestEnuTable(t *testing.T) {
	out, err := execute(t, "enu", "--emin", "2", "--emax", "2", "--n", "1", "--costheta", "1,-1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Ee", "cosθ", "Enu"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2", "1", "3.294317296"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "-1", "3.30795251"}, strings.Fields(lines[2]))
}

func TestJacobianTableEdep(t *testing.T) {
	out, err := execute(t, "jacobian", "--edep", "--emin", "2.5109989461", "--emax", "2.5109989461", "--n", "1", "--costheta", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Edep", "cosθ", "Enu", "dEnu/dE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2.510998946", "1", "3.294317296", "0.9999502101"}, strings.Fields(lines[1]))
}

func TestXSecTable(t *testing.T) {
	out, err := execute(t, "xsec", "--n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+3*3)
	assert.Contains(t, lines[0], "dσ/dcosθ[cm²]")
}

func TestOscProbTable(t *testing.T) {
	out, err := execute(t, "oscprob", "--emin", "2", "--emax", "6", "--n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"Enu", "P(ee)"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2", "0.9727776016"}, strings.Fields(lines[1]))

	out, err = execute(t, "oscprob", "--emin", "2", "--emax", "6", "--n", "3", "--baseline", "52500", "--unit", "m")
	require.NoError(t, err)
	assert.Contains(t, out, "0.9727776016")
}

func TestParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "io.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parameters:\n  nmo: -1\n"), 0o600))

	out, err := execute(t, "--params", path, "oscprob", "--emin", "2", "--emax", "2", "--n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.9842219126")
}

func TestPrintGroup(t *testing.T) {
	out, err := execute(t, "print", "--n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `metanode "ibd"`)
	assert.Contains(t, out, "ElectronMass")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad unit", []string{"oscprob", "--unit", "mi"}},
		{"bad range", []string{"enu", "--emin", "5", "--emax", "1"}},
		{"bad count", []string{"enu", "--n", "0"}},
		{"bad cosine", []string{"xsec", "--costheta", "2"}},
		{"missing params", []string{"--params", "/nonexistent/params.yaml", "enu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
		})
	}
}
