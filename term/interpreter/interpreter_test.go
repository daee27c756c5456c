package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_ExactCommands(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		category Category
		text     string
	}{
		{
			name:     "clear",
			inputs:   []string{"CLEAR", "clear", "  Clear  "},
			category: CategorySpecial,
			text:     "",
		},
		{
			name:     "check nn",
			inputs:   []string{"CHECK NN", "check nn", "\tCheck nN\n"},
			category: CategoryAnalysis,
			text:     checkNNText,
		},
		{
			name:     "help",
			inputs:   []string{"HELP", "help", " hElP "},
			category: CategoryInfo,
			text:     helpText,
		},
		{
			name:     "self-destruct",
			inputs:   []string{"INITIATE SELF-DESTRUCT", "initiate self-destruct", "  Initiate Self-Destruct "},
			category: CategoryError,
			text:     selfDestructText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, input := range tt.inputs {
				resp := Interpret(input)
				assert.Equal(t, tt.category, resp.Category, "input %q", input)
				assert.Equal(t, tt.text, resp.Text, "input %q", input)
			}
		})
	}
}

func TestInterpret_Scan(t *testing.T) {
	for _, input := range []string{"scan firewall", "SCAN FIREWALL", "  SCAN   FIREWALL  "} {
		resp := Interpret(input)
		assert.Equal(t, Response{Text: scanFirewallText, Category: CategoryAnalysis}, resp, "input %q", input)
	}

	for _, input := range []string{"scan network", "SCAN  network"} {
		resp := Interpret(input)
		assert.Equal(t, Response{Text: scanNetworkText, Category: CategoryAnalysis}, resp, "input %q", input)
	}
}

func TestInterpret_ScanUnknownTarget(t *testing.T) {
	resp := Interpret("SCAN MARS")

	assert.Equal(t, CategoryError, resp.Category)
	assert.Contains(t, resp.Text, "SCAN MARS")
	assert.Equal(t, Unrecognized("SCAN MARS"), resp)
}

func TestInterpret_Report(t *testing.T) {
	assert.Equal(t, Response{Text: reportCryptoText, Category: CategoryReport}, Interpret("report crypto"))
	assert.Equal(t, Response{Text: reportCryptoText, Category: CategoryReport}, Interpret("REPORT   CRYPTO "))

	// Without a target the prefix "REPORT " never matches.
	assert.Equal(t, Unrecognized("report"), Interpret("report"))
	assert.Equal(t, Unrecognized("report weather"), Interpret("report weather"))
}

func TestInterpret_DefaultEchoesRawInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"hack the planet", `// ERROR: COMMAND "hack the planet" NOT RECOGNIZED. TYPE 'HELP' FOR AVAILABLE COMMANDS.`},
		{"  ls -la ", `// ERROR: COMMAND "  ls -la " NOT RECOGNIZED. TYPE 'HELP' FOR AVAILABLE COMMANDS.`},
		{"scan mars", `// ERROR: COMMAND "scan mars" NOT RECOGNIZED. TYPE 'HELP' FOR AVAILABLE COMMANDS.`},
		{"CHECK  NN", `// ERROR: COMMAND "CHECK  NN" NOT RECOGNIZED. TYPE 'HELP' FOR AVAILABLE COMMANDS.`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			resp := Interpret(tt.raw)
			assert.Equal(t, CategoryError, resp.Category)
			assert.Equal(t, tt.want, resp.Text)
		})
	}
}

func TestInterpret_Deterministic(t *testing.T) {
	for _, input := range []string{"help", "scan network", "nope"} {
		assert.Equal(t, Interpret(input), Interpret(input))
	}
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, rule := range Rules() {
		names = append(names, rule.Name)
	}

	assert.Equal(t, []string{"clear", "check-nn", "help", "scan", "report", "self-destruct", "default"}, names)
}

func TestRules_Individually(t *testing.T) {
	byName := map[string]Rule{}
	for _, rule := range Rules() {
		byName[rule.Name] = rule
	}

	_, ok := byName["clear"].Apply(NewCommand("help"))
	assert.False(t, ok)

	resp, ok := byName["clear"].Apply(NewCommand(" clear "))
	require.True(t, ok)
	assert.True(t, resp.IsClear())

	_, ok = byName["scan"].Apply(NewCommand("scanfirewall"))
	assert.False(t, ok, "prefix requires the separating space")

	resp, ok = byName["scan"].Apply(NewCommand("scan jupiter"))
	require.True(t, ok, "scan claims every target")
	assert.Equal(t, Unrecognized("scan jupiter"), resp)

	resp, ok = byName["default"].Apply(NewCommand("anything"))
	require.True(t, ok)
	assert.Equal(t, CategoryError, resp.Category)
}

func TestRules_ReturnsCopy(t *testing.T) {
	r := Rules()
	r[0] = Rule{Name: "tampered"}

	assert.Equal(t, "clear", Rules()[0].Name)
}

func TestCategory_Marked(t *testing.T) {
	marked := map[Category]bool{
		CategoryInfo:     false,
		CategoryAnalysis: false,
		CategoryReport:   false,
		CategoryError:    true,
		CategorySpecial:  true,
		CategoryInput:    false,
		CategorySuccess:  false,
	}
	for category, want := range marked {
		assert.Equal(t, want, category.Marked(), category.String())
	}
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand("  scan   network ")

	assert.Equal(t, "  scan   network ", cmd.Raw)
	assert.Equal(t, "SCAN   NETWORK", cmd.Normalized)
}
