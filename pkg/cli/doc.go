// Package cli implements the netsnap command-line interface.
//
// # Commands
//
// snapshot - Capture device state from the inventory:
//
//	netsnap snapshot --config inventory.yaml [--output FILE] [--format json|yaml|table]
//
// Connects to every device in the inventory and captures facts,
// interfaces, routing and environment state. Output defaults to stdout
// in JSON format.
//
// ping - Run a ping from a device:
//
//	netsnap ping --config inventory.yaml --target core-sw1 10.0.0.254
//
// traceroute - Run a traceroute from a device:
//
//	netsnap traceroute --config inventory.yaml --target core-sw1 10.0.0.254
//
// serve - Run the agent HTTP server:
//
//	netsnap serve --config inventory.yaml [--port 8080]
//
// # Environment Variables
//
//	LOG_LEVEL         Set logging verbosity (debug, info, warn, error)
//	NETSNAP_USERNAME  Default device username, overriding the inventory
//	NETSNAP_PASSWORD  Default device password, overriding the inventory
//	PORT              Agent server port
//
// The CLI uses the urfave/cli/v3 framework and delegates to
// pkg/snapshotter, pkg/ftos, pkg/server and pkg/serializer. Version
// information is embedded at build time using ldflags on pkg/version.
package cli
