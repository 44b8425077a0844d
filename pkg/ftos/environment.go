package ftos

import (
	"context"
	"fmt"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// Environment returns hardware health per stack unit: temperature and
// power from the environment table, CPU load from the one-minute
// average, and memory summed across units. FTOS reports no usable fan
// detail, so the fan map stays empty. Power capacity and output are not
// printed and carry the float sentinel.
func (d *Driver) Environment(ctx context.Context) (netmodel.Environment, error) {
	env := netmodel.Environment{
		Fans:        map[string]netmodel.Fan{},
		Temperature: map[string]netmodel.Temperature{},
		Power:       map[string]netmodel.PowerSupply{},
		CPU:         map[string]netmodel.CPU{},
	}

	out, err := d.send(ctx, "show environment stack-unit")
	if err != nil {
		return env, err
	}
	records, err := d.extract(out, "show_environment_stack-unit")
	if err != nil {
		return env, err
	}
	for _, rec := range records {
		unit := unitName(rec["unit"])

		// temp_status 2 is the normal reading; anything else is a
		// warning or shutdown threshold breach.
		alert := !textproc.BoolIs(rec["temp_status"], "2")
		env.Temperature[unit] = netmodel.Temperature{
			Temperature: textproc.FloatOr(rec["temperature"], netmodel.SentinelFloat),
			IsAlert:     alert,
			IsCritical:  alert,
		}

		env.Power[unit] = netmodel.PowerSupply{
			Status:   textproc.BoolIs(rec["volt_status"], "ok"),
			Capacity: netmodel.SentinelFloat,
			Output:   netmodel.SentinelFloat,
		}
	}

	out, err = d.send(ctx, "show processes cpu summary")
	if err != nil {
		return env, err
	}
	records, err = d.extract(out, "show_processes_cpu_summary")
	if err != nil {
		return env, err
	}
	for _, rec := range records {
		env.CPU[unitName(rec["unit"])] = netmodel.CPU{
			Usage: textproc.FloatOr(rec["omin"], netmodel.SentinelFloat),
		}
	}

	out, err = d.send(ctx, "show memory")
	if err != nil {
		return env, err
	}
	records, err = d.extract(out, "show_memory")
	if err != nil {
		return env, err
	}
	for _, rec := range records {
		env.Memory.AvailableRAM += textproc.IntOr(rec["total"], 0)
		env.Memory.UsedRAM += textproc.IntOr(rec["used"], 0)
	}

	return env, nil
}

func unitName(raw string) string {
	return fmt.Sprintf("Unit %d", textproc.IntOr(raw, 0))
}
