package proxy

// Location is one simulated exit node.
type Location struct {
	Address string
	Label   string
}

// Locations is the fixed cycle of exit nodes, in activation order.
var Locations = []Location{
	{Address: "172.67.142.15", Label: "Sydney, Australia"},
	{Address: "45.33.49.119", Label: "Tokyo, Japan"},
	{Address: "198.51.100.22", Label: "Sao Paulo, Brazil"},
	{Address: "203.0.113.88", Label: "London, United Kingdom"},
	{Address: "104.244.42.129", Label: "Amsterdam, Netherlands"},
}

// InitialIndex is the entry shown before the first activation.
const InitialIndex = 4
