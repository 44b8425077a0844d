// Package config loads the netsnap device inventory.
//
// The inventory is a YAML file naming the devices to snapshot and how
// to reach them. Connection settings shared by the fleet go under
// defaults and can be overridden per target; credentials can also come
// from the environment so inventory files stay secret-free.
package config
