package collector

import (
	"context"

	"github.com/netsnap/netsnap/pkg/ftos"
)

// funcCollector adapts a driver getter closure to the Collector
// interface.
type funcCollector struct {
	name string
	fn   func(ctx context.Context) (any, error)
}

func (c *funcCollector) Name() string { return c.name }

func (c *funcCollector) Collect(ctx context.Context) (any, error) {
	return c.fn(ctx)
}

// Factory creates collectors bound to one device session.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateFactsCollector() Collector
	CreateInterfacesCollector() Collector
	CreateCountersCollector() Collector
	CreateAddressesCollector() Collector
	CreateARPCollector() Collector
	CreateMACTableCollector() Collector
	CreateBGPCollector() Collector
	CreateLLDPCollector() Collector
	CreateNTPCollector() Collector
	CreateEnvironmentCollector() Collector
	CreateSNMPCollector() Collector
	CreateUsersCollector() Collector
	CreateConfigCollector() Collector
	All() []Collector
}

// DriverFactory creates collectors over an FTOS driver session.
type DriverFactory struct {
	Driver *ftos.Driver
}

// NewDriverFactory binds a collector factory to an open driver.
func NewDriverFactory(d *ftos.Driver) *DriverFactory {
	return &DriverFactory{Driver: d}
}

// CreateFactsCollector creates the device identity collector.
func (f *DriverFactory) CreateFactsCollector() Collector {
	return &funcCollector{name: "facts", fn: func(ctx context.Context) (any, error) {
		return f.Driver.Facts(ctx)
	}}
}

// CreateInterfacesCollector creates the interface state collector.
func (f *DriverFactory) CreateInterfacesCollector() Collector {
	return &funcCollector{name: "interfaces", fn: func(ctx context.Context) (any, error) {
		return f.Driver.Interfaces(ctx)
	}}
}

// CreateCountersCollector creates the traffic counter collector.
func (f *DriverFactory) CreateCountersCollector() Collector {
	return &funcCollector{name: "interfaces_counters", fn: func(ctx context.Context) (any, error) {
		return f.Driver.InterfacesCounters(ctx)
	}}
}

// CreateAddressesCollector creates the interface addressing collector.
func (f *DriverFactory) CreateAddressesCollector() Collector {
	return &funcCollector{name: "interfaces_ip", fn: func(ctx context.Context) (any, error) {
		return f.Driver.InterfacesIP(ctx)
	}}
}

// CreateARPCollector creates the ARP table collector.
func (f *DriverFactory) CreateARPCollector() Collector {
	return &funcCollector{name: "arp_table", fn: func(ctx context.Context) (any, error) {
		return f.Driver.ARPTable(ctx)
	}}
}

// CreateMACTableCollector creates the switching table collector.
func (f *DriverFactory) CreateMACTableCollector() Collector {
	return &funcCollector{name: "mac_address_table", fn: func(ctx context.Context) (any, error) {
		return f.Driver.MACAddressTable(ctx)
	}}
}

// CreateBGPCollector creates the BGP session state collector.
func (f *DriverFactory) CreateBGPCollector() Collector {
	return &funcCollector{name: "bgp_neighbors_detail", fn: func(ctx context.Context) (any, error) {
		return f.Driver.BGPNeighborsDetail(ctx, "")
	}}
}

// CreateLLDPCollector creates the LLDP neighbor collector.
func (f *DriverFactory) CreateLLDPCollector() Collector {
	return &funcCollector{name: "lldp_neighbors_detail", fn: func(ctx context.Context) (any, error) {
		return f.Driver.LLDPNeighborsDetail(ctx, "")
	}}
}

// CreateNTPCollector creates the NTP statistics collector.
func (f *DriverFactory) CreateNTPCollector() Collector {
	return &funcCollector{name: "ntp_stats", fn: func(ctx context.Context) (any, error) {
		return f.Driver.NTPStats(ctx)
	}}
}

// CreateEnvironmentCollector creates the hardware health collector.
func (f *DriverFactory) CreateEnvironmentCollector() Collector {
	return &funcCollector{name: "environment", fn: func(ctx context.Context) (any, error) {
		return f.Driver.Environment(ctx)
	}}
}

// CreateSNMPCollector creates the SNMP configuration collector.
func (f *DriverFactory) CreateSNMPCollector() Collector {
	return &funcCollector{name: "snmp_information", fn: func(ctx context.Context) (any, error) {
		return f.Driver.SNMPInfo(ctx)
	}}
}

// CreateUsersCollector creates the local account collector.
func (f *DriverFactory) CreateUsersCollector() Collector {
	return &funcCollector{name: "users", fn: func(ctx context.Context) (any, error) {
		return f.Driver.Users(ctx)
	}}
}

// CreateConfigCollector creates the device configuration collector.
func (f *DriverFactory) CreateConfigCollector() Collector {
	return &funcCollector{name: "config", fn: func(ctx context.Context) (any, error) {
		return f.Driver.Config(ctx, "all")
	}}
}

// All returns the full collector set in a stable order. Facts comes
// first so a broken session fails fast before the heavier queries.
func (f *DriverFactory) All() []Collector {
	return []Collector{
		f.CreateFactsCollector(),
		f.CreateInterfacesCollector(),
		f.CreateCountersCollector(),
		f.CreateAddressesCollector(),
		f.CreateARPCollector(),
		f.CreateMACTableCollector(),
		f.CreateBGPCollector(),
		f.CreateLLDPCollector(),
		f.CreateNTPCollector(),
		f.CreateEnvironmentCollector(),
		f.CreateSNMPCollector(),
		f.CreateUsersCollector(),
		f.CreateConfigCollector(),
	}
}
