package interpreter

import "fmt"

const checkNNText = `// NEURAL NET DIAGNOSTIC
// CORE INTEGRITY ........ 98.7%
// SYNAPTIC LATENCY ...... 12ms
// MEMORY BANKS .......... NOMINAL
// THREAT HEURISTICS ..... ONLINE
// STATUS: ALL SUBSYSTEMS OPERATIONAL.`

const helpText = `// AVAILABLE COMMANDS:
//   HELP ..................... SHOW THIS LIST
//   CHECK NN ................. RUN NEURAL NET DIAGNOSTIC
//   SCAN FIREWALL ............ PROBE PERIMETER DEFENSES
//   SCAN NETWORK ............. MAP LOCAL NETWORK NODES
//   REPORT CRYPTO ............ GENERATE CRYPTO MARKET REPORT
//   CLEAR .................... CLEAR THE TERMINAL
// PRESS CTRL+P TO CHANGE PROXY LOCATION.`

const scanFirewallText = `// FIREWALL SCAN COMPLETE
// PORTS PROBED: 65535
// OPEN PORTS: 22 (SSH), 443 (HTTPS)
// INTRUSION DETECTION: ACTIVE
// VULNERABILITIES FOUND: 0
// PERIMETER STATUS: SECURE.`

const scanNetworkText = `// NETWORK SCAN COMPLETE
// NODES DISCOVERED: 14
// GATEWAY: 10.0.0.1
// ENCRYPTED CHANNELS: 11/14
// ANOMALOUS TRAFFIC: NONE DETECTED
// NETWORK STATUS: STABLE.`

const reportCryptoText = `// CRYPTO MARKET REPORT
// BTC ..... $67,420.00 (+2.1%)
// ETH ..... $3,512.77 (-0.4%)
// XMR ..... $168.03 (+5.8%)
// SENTIMENT: CAUTIOUSLY BULLISH
// RECOMMENDATION: HOLD POSITIONS.`

const selfDestructText = `// ACCESS DENIED.
// SELF-DESTRUCT SEQUENCE REQUIRES LEVEL 5 CLEARANCE.
// THIS INCIDENT HAS BEEN LOGGED.`

// Unrecognized is the default reply. It echoes the input exactly as typed.
func Unrecognized(raw string) Response {
	return Response{
		Text:     fmt.Sprintf(`// ERROR: COMMAND "%s" NOT RECOGNIZED. TYPE 'HELP' FOR AVAILABLE COMMANDS.`, raw),
		Category: CategoryError,
	}
}
