package netmodel

// Sentinel values reported when a measurement is unparsable or not
// implemented by the device. Distinct from a legitimate zero.
const (
	SentinelInt   int64   = -1
	SentinelFloat float64 = -1.0
)

// GlobalTable is the implicit routing table used when the device output
// carries no VRF scoping information.
const GlobalTable = "global"

// Facts holds the basic identity of a device.
type Facts struct {
	Uptime        int64    `json:"uptime" yaml:"uptime"`
	Vendor        string   `json:"vendor" yaml:"vendor"`
	OSVersion     string   `json:"os_version" yaml:"os_version"`
	SerialNumber  string   `json:"serial_number" yaml:"serial_number"`
	Model         string   `json:"model" yaml:"model"`
	Hostname      string   `json:"hostname" yaml:"hostname"`
	FQDN          string   `json:"fqdn" yaml:"fqdn"`
	InterfaceList []string `json:"interface_list" yaml:"interface_list"`
}

// Interface describes the state of a single interface. Speed is in
// megabits, LastFlapped in seconds.
type Interface struct {
	IsEnabled   bool    `json:"is_enabled" yaml:"is_enabled"`
	IsUp        bool    `json:"is_up" yaml:"is_up"`
	Description string  `json:"description" yaml:"description"`
	MACAddress  string  `json:"mac_address" yaml:"mac_address"`
	LastFlapped float64 `json:"last_flapped" yaml:"last_flapped"`
	Speed       int64   `json:"speed" yaml:"speed"`
}

// InterfaceCounters maps canonical counter names to values. The key set
// is fixed (see CounterKeys); counters the device does not report are 0.
type InterfaceCounters map[string]int64

// CounterKeys is the full canonical counter key set every
// InterfaceCounters value carries.
var CounterKeys = []string{
	"rx_errors",
	"rx_octets",
	"rx_unicast_packets",
	"rx_multicast_packets",
	"rx_broadcast_packets",
	"rx_discards",
	"tx_errors",
	"tx_octets",
	"tx_unicast_packets",
	"tx_multicast_packets",
	"tx_broadcast_packets",
	"tx_discards",
}

// NewInterfaceCounters returns a counter map with the full canonical
// key set initialized to zero.
func NewInterfaceCounters() InterfaceCounters {
	c := make(InterfaceCounters, len(CounterKeys))
	for _, k := range CounterKeys {
		c[k] = 0
	}
	return c
}

// PrefixEntry is a single address attachment with its prefix length.
type PrefixEntry struct {
	PrefixLength int `json:"prefix_length" yaml:"prefix_length"`
}

// InterfaceIP holds the addresses configured on one interface, keyed by
// address text within each protocol family.
type InterfaceIP struct {
	IPv4 map[string]PrefixEntry `json:"ipv4,omitempty" yaml:"ipv4,omitempty"`
	IPv6 map[string]PrefixEntry `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
}

// BGPNeighborDetail is the full per-neighbor BGP session state.
type BGPNeighborDetail struct {
	Up                      bool   `json:"up" yaml:"up"`
	LocalAS                 int64  `json:"local_as" yaml:"local_as"`
	RemoteAS                int64  `json:"remote_as" yaml:"remote_as"`
	RouterID                string `json:"router_id" yaml:"router_id"`
	LocalAddress            string `json:"local_address" yaml:"local_address"`
	LocalAddressConfigured  bool   `json:"local_address_configured" yaml:"local_address_configured"`
	LocalPort               int64  `json:"local_port" yaml:"local_port"`
	RoutingTable            string `json:"routing_table" yaml:"routing_table"`
	RemoteAddress           string `json:"remote_address" yaml:"remote_address"`
	RemotePort              int64  `json:"remote_port" yaml:"remote_port"`
	Multihop                bool   `json:"multihop" yaml:"multihop"`
	Multipath               bool   `json:"multipath" yaml:"multipath"`
	RemovePrivateAS         bool   `json:"remove_private_as" yaml:"remove_private_as"`
	ImportPolicy            string `json:"import_policy" yaml:"import_policy"`
	ExportPolicy            string `json:"export_policy" yaml:"export_policy"`
	InputMessages           int64  `json:"input_messages" yaml:"input_messages"`
	OutputMessages          int64  `json:"output_messages" yaml:"output_messages"`
	InputUpdates            int64  `json:"input_updates" yaml:"input_updates"`
	OutputUpdates           int64  `json:"output_updates" yaml:"output_updates"`
	MessagesQueuedOut       int64  `json:"messages_queued_out" yaml:"messages_queued_out"`
	ConnectionState         string `json:"connection_state" yaml:"connection_state"`
	PreviousConnectionState string `json:"previous_connection_state" yaml:"previous_connection_state"`
	LastEvent               string `json:"last_event" yaml:"last_event"`
	SuppressFourByteAS      bool   `json:"suppress_4byte_as" yaml:"suppress_4byte_as"`
	LocalASPrepend          bool   `json:"local_as_prepend" yaml:"local_as_prepend"`
	Holdtime                int64  `json:"holdtime" yaml:"holdtime"`
	ConfiguredHoldtime      int64  `json:"configured_holdtime" yaml:"configured_holdtime"`
	Keepalive               int64  `json:"keepalive" yaml:"keepalive"`
	ConfiguredKeepalive     int64  `json:"configured_keepalive" yaml:"configured_keepalive"`
	ActivePrefixCount       int64  `json:"active_prefix_count" yaml:"active_prefix_count"`
	ReceivedPrefixCount     int64  `json:"received_prefix_count" yaml:"received_prefix_count"`
	AcceptedPrefixCount     int64  `json:"accepted_prefix_count" yaml:"accepted_prefix_count"`
	SuppressedPrefixCount   int64  `json:"suppressed_prefix_count" yaml:"suppressed_prefix_count"`
	AdvertisedPrefixCount   int64  `json:"advertised_prefix_count" yaml:"advertised_prefix_count"`
	FlapCount               int64  `json:"flap_count" yaml:"flap_count"`
}

// BGPNeighborsDetail groups neighbors by routing table, then remote AS.
// Encounter order is preserved within each group.
type BGPNeighborsDetail map[string]map[int64][]BGPNeighborDetail

// LLDPNeighbor is the summary view of one discovered neighbor.
type LLDPNeighbor struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	Port     string `json:"port" yaml:"port"`
}

// LLDPNeighborDetail is the detailed view of one discovered neighbor.
type LLDPNeighborDetail struct {
	ParentInterface           string   `json:"parent_interface" yaml:"parent_interface"`
	RemoteChassisID           string   `json:"remote_chassis_id" yaml:"remote_chassis_id"`
	RemotePort                string   `json:"remote_port" yaml:"remote_port"`
	RemotePortDescription     string   `json:"remote_port_description" yaml:"remote_port_description"`
	RemoteSystemName          string   `json:"remote_system_name" yaml:"remote_system_name"`
	RemoteSystemDescription   string   `json:"remote_system_description" yaml:"remote_system_description"`
	RemoteSystemCapab         []string `json:"remote_system_capab" yaml:"remote_system_capab"`
	RemoteSystemEnabledCapab  []string `json:"remote_system_enable_capab" yaml:"remote_system_enable_capab"`
}

// ARPEntry is one row of the device ARP table. Age is in seconds.
type ARPEntry struct {
	Interface string  `json:"interface" yaml:"interface"`
	IP        string  `json:"ip" yaml:"ip"`
	MAC       string  `json:"mac" yaml:"mac"`
	Age       float64 `json:"age" yaml:"age"`
}

// MACTableEntry is one row of the device MAC address table.
type MACTableEntry struct {
	MAC       string  `json:"mac" yaml:"mac"`
	Interface string  `json:"interface" yaml:"interface"`
	VLAN      int64   `json:"vlan" yaml:"vlan"`
	Static    bool    `json:"static" yaml:"static"`
	Active    bool    `json:"active" yaml:"active"`
	Moves     int64   `json:"moves" yaml:"moves"`
	LastMove  float64 `json:"last_move" yaml:"last_move"`
}

// NTPPeer marks the presence of an NTP association; it carries no state.
type NTPPeer struct{}

// NTPStat is the statistics row for one NTP association.
type NTPStat struct {
	Remote       string  `json:"remote" yaml:"remote"`
	ReferenceID  string  `json:"referenceid" yaml:"referenceid"`
	Synchronized bool    `json:"synchronized" yaml:"synchronized"`
	Stratum      int64   `json:"stratum" yaml:"stratum"`
	Type         string  `json:"type" yaml:"type"`
	When         string  `json:"when" yaml:"when"`
	HostPoll     int64   `json:"hostpoll" yaml:"hostpoll"`
	Reachability int64   `json:"reachability" yaml:"reachability"`
	Delay        float64 `json:"delay" yaml:"delay"`
	Offset       float64 `json:"offset" yaml:"offset"`
	Jitter       float64 `json:"jitter" yaml:"jitter"`
}

// SNMPCommunity is a single SNMP community definition.
type SNMPCommunity struct {
	Mode string `json:"mode" yaml:"mode"`
	ACL  string `json:"acl" yaml:"acl"`
}

// SNMPInfo is the device SNMP configuration summary.
type SNMPInfo struct {
	ChassisID string                   `json:"chassis_id" yaml:"chassis_id"`
	Community map[string]SNMPCommunity `json:"community" yaml:"community"`
	Contact   string                   `json:"contact" yaml:"contact"`
	Location  string                   `json:"location" yaml:"location"`
}

// User is one locally configured user account.
type User struct {
	Password string   `json:"password" yaml:"password"`
	SSHKeys  []string `json:"sshkeys" yaml:"sshkeys"`
	Level    int64    `json:"level" yaml:"level"`
}

// Temperature is the thermal state of one unit.
type Temperature struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	IsAlert     bool    `json:"is_alert" yaml:"is_alert"`
	IsCritical  bool    `json:"is_critical" yaml:"is_critical"`
}

// PowerSupply is the power state of one unit.
type PowerSupply struct {
	Status   bool    `json:"status" yaml:"status"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
	Output   float64 `json:"output" yaml:"output"`
}

// CPU is the processor load of one unit.
type CPU struct {
	Usage float64 `json:"%usage" yaml:"usage"`
}

// Fan is the state of one cooling unit.
type Fan struct {
	Status bool `json:"status" yaml:"status"`
}

// Memory is the aggregate memory usage across units.
type Memory struct {
	AvailableRAM int64 `json:"available_ram" yaml:"available_ram"`
	UsedRAM      int64 `json:"used_ram" yaml:"used_ram"`
}

// Environment is the hardware health summary of a device.
type Environment struct {
	Fans        map[string]Fan         `json:"fans" yaml:"fans"`
	Temperature map[string]Temperature `json:"temperature" yaml:"temperature"`
	Power       map[string]PowerSupply `json:"power" yaml:"power"`
	CPU         map[string]CPU         `json:"cpu" yaml:"cpu"`
	Memory      Memory                 `json:"memory" yaml:"memory"`
}

// DeviceConfig holds the retrieved device configurations.
type DeviceConfig struct {
	Startup   string `json:"startup" yaml:"startup"`
	Running   string `json:"running" yaml:"running"`
	Candidate string `json:"candidate" yaml:"candidate"`
}

// PingProbe is one per-probe result within a ping summary.
type PingProbe struct {
	IPAddress string  `json:"ip_address" yaml:"ip_address"`
	RTT       float64 `json:"rtt" yaml:"rtt"`
}

// PingSummary is the parsed result of a successful ping.
type PingSummary struct {
	ProbesSent int64       `json:"probes_sent" yaml:"probes_sent"`
	PacketLoss int64       `json:"packet_loss" yaml:"packet_loss"`
	RTTMin     float64     `json:"rtt_min" yaml:"rtt_min"`
	RTTAvg     float64     `json:"rtt_avg" yaml:"rtt_avg"`
	RTTMax     float64     `json:"rtt_max" yaml:"rtt_max"`
	RTTStddev  float64     `json:"rtt_stddev" yaml:"rtt_stddev"`
	Results    []PingProbe `json:"results" yaml:"results"`
}

// PingResult is either a device-reported error or a parsed summary.
// Exactly one of Error or Success is set.
type PingResult struct {
	Error   string       `json:"error,omitempty" yaml:"error,omitempty"`
	Success *PingSummary `json:"success,omitempty" yaml:"success,omitempty"`
}

// TracerouteProbe is one probe within a traceroute hop.
type TracerouteProbe struct {
	RTT       float64 `json:"rtt" yaml:"rtt"`
	IPAddress string  `json:"ip_address" yaml:"ip_address"`
	HostName  string  `json:"host_name" yaml:"host_name"`
}

// TracerouteHop groups probes by their ordinal, numbered from 1 in
// parse order.
type TracerouteHop struct {
	Probes map[int]TracerouteProbe `json:"probes" yaml:"probes"`
}

// TracerouteResult is either a device-reported error or hops keyed by
// TTL. Exactly one of Error or Success is set.
type TracerouteResult struct {
	Error   string                `json:"error,omitempty" yaml:"error,omitempty"`
	Success map[int]TracerouteHop `json:"success,omitempty" yaml:"success,omitempty"`
}
