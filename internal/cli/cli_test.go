package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseHoldingSpecs(t *testing.T) {
	holdings, err := parseHoldingSpecs([]string{
		"Broad Market:60:7:3",
		" : 40 : 4.5 : 2.5 ",
	})
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	assert.Equal(t, "Broad Market", holdings[0].Name)
	assert.True(t, holdings[0].WeightPct.Equal(decimal.NewFromInt(60)))
	assert.True(t, holdings[0].AnnualReturnPct.Equal(decimal.NewFromInt(7)))

	assert.Equal(t, "", holdings[1].Name)
	assert.True(t, holdings[1].AnnualYieldPct.Equal(decimal.NewFromFloat(2.5)))
}

func TestParseHoldingSpecs_Rejections(t *testing.T) {
	cases := []struct {
		spec    string
		wantMsg string
	}{
		{spec: "Broad Market:60:7", wantMsg: "want name:weight:return:yield"},
		{spec: "x:abc:7:3", wantMsg: "bad weight"},
		{spec: "x:60:seven:3", wantMsg: "bad return"},
		{spec: "x:60:7:?", wantMsg: "bad yield"},
	}
	for _, tc := range cases {
		_, err := parseHoldingSpecs([]string{tc.spec})
		require.Error(t, err, "spec %q", tc.spec)
		assert.Contains(t, err.Error(), tc.wantMsg)
	}
}

func TestGrowCommand_ConsoleOutput(t *testing.T) {
	out, err := runCommand(t, "grow", "--principal", "0", "--monthly", "1000", "--return", "0", "--years", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "DCA Accumulation")
	// 24 months of 1000 at 0% is exactly 24,000.
	assert.Contains(t, out, "$24,000.00")
}

func TestGoalCommand_ZeroHorizonFails(t *testing.T) {
	_, err := runCommand(t, "goal", "--target", "1000", "--return", "0", "--years", "0")
	require.Error(t, err)
	assert.True(t, IsInputError(err))
}

func TestDividendCommand(t *testing.T) {
	out, err := runCommand(t, "dividend", "--principal", "1000000", "--yield", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "$2,500.00")
}

func TestPortfolioCommand_HoldingFlags(t *testing.T) {
	out, err := runCommand(t, "portfolio",
		"--holding", "Stocks:50:8:2",
		"--holding", "Bonds:50:4:3",
		"--monthly", "1000", "--years", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Stocks")
	assert.Contains(t, out, "Weighted return: 6.00%")
}

func TestScenariosCommand_ListsPresets(t *testing.T) {
	out, err := runCommand(t, "scenarios")
	require.NoError(t, err)
	for _, name := range []string{"pessimistic", "steady", "historical", "optimistic"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected preset %q in listing, got:\n%s", name, out)
		}
	}
}

func TestRootCommand_UnknownScenario(t *testing.T) {
	_, err := runCommand(t, "grow", "--scenario", "lunar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")

	out, err := runCommand(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to "+path)

	// The written file loads back and drives a calculation.
	out, err = runCommand(t, "grow", "--config", path, "--scenario", "steady")
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario: steady")

	// A second init without --force refuses to overwrite.
	_, err = runCommand(t, "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDocsCommand_Plain(t *testing.T) {
	out, err := runCommand(t, "docs", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 + r)")
}

func TestRootCommand_UnknownCurrency(t *testing.T) {
	_, err := runCommand(t, "grow", "--currency", "XXXX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown currency code")
}
