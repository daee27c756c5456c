package interpreter

import "strings"

// Rule is one entry of the dispatch table.
type Rule struct {
	Name  string
	Apply func(cmd Command) (Response, bool)
}

var rules = []Rule{
	exact("clear", "CLEAR", Response{Category: CategorySpecial}),
	exact("check-nn", "CHECK NN", Response{Text: checkNNText, Category: CategoryAnalysis}),
	exact("help", "HELP", Response{Text: helpText, Category: CategoryInfo}),
	prefixed("scan", "SCAN ", map[string]Response{
		"FIREWALL": {Text: scanFirewallText, Category: CategoryAnalysis},
		"NETWORK":  {Text: scanNetworkText, Category: CategoryAnalysis},
	}),
	prefixed("report", "REPORT ", map[string]Response{
		"CRYPTO": {Text: reportCryptoText, Category: CategoryReport},
	}),
	exact("self-destruct", "INITIATE SELF-DESTRUCT", Response{Text: selfDestructText, Category: CategoryError}),
	{
		Name: "default",
		Apply: func(cmd Command) (Response, bool) {
			return Unrecognized(cmd.Raw), true
		},
	},
}

// Rules returns a copy of the dispatch table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func exact(name, keyword string, resp Response) Rule {
	return Rule{
		Name: name,
		Apply: func(cmd Command) (Response, bool) {
			if cmd.Normalized != keyword {
				return Response{}, false
			}
			return resp, true
		},
	}
}

// prefixed claims every command starting with prefix. An unknown target does
// not fall through to later rules: it gets the default reply for the raw input.
func prefixed(name, prefix string, targets map[string]Response) Rule {
	return Rule{
		Name: name,
		Apply: func(cmd Command) (Response, bool) {
			target, found := strings.CutPrefix(cmd.Normalized, prefix)
			if !found {
				return Response{}, false
			}
			if resp, ok := targets[strings.TrimSpace(target)]; ok {
				return resp, true
			}
			return Unrecognized(cmd.Raw), true
		},
	}
}
