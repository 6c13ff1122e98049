// Package router translates logical operations into transport invocations,
// enforcing per-operation policy: manufacturer gating, argument validation,
// confirmation of destructive actions. Validation failures abort before any
// contact with the target, and the router never retries.
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sylgeist/oob-cli/pkg/guard"
	"github.com/sylgeist/oob-cli/pkg/inventory"
	"github.com/sylgeist/oob-cli/pkg/racadm"
	"github.com/sylgeist/oob-cli/pkg/redfish"
	"github.com/sylgeist/oob-cli/pkg/transport"
)

// Fixed IPMI command strings per logical operation.
const (
	cmdPowerStatus = "chassis power status"
	cmdPowerOn     = "chassis power on"
	cmdPowerCycle  = "chassis power cycle"
	cmdPowerDiag   = "chassis power diag"
	cmdSensor      = "sensor"
	cmdSELList     = "sel elist"
)

const bootUsage = "usage: boot <pxe|bios>"

// Router maps a logical operation onto a transport and normalizes the
// response.
type Router struct {
	resolver inventory.Resolver
	cli      transport.Transport // local IPMI CLI
	shell    transport.Transport // vendor shell over SSH (RACADM)
	rest     transport.Transport // Redfish REST
	notifier *guard.Notifier
}

// New wires a router from its collaborators.
func New(resolver inventory.Resolver, cli, shell, rest transport.Transport, notifier *guard.Notifier) *Router {
	return &Router{
		resolver: resolver,
		cli:      cli,
		shell:    shell,
		rest:     rest,
		notifier: notifier,
	}
}

// Run resolves the hostname, applies the operation's policy and executes it.
func (r *Router) Run(ctx context.Context, hostname string, op Operation) (*Result, error) {
	// Destructive operations are confirmed before anything leaves this
	// process; the token is a pure function of the hostname.
	switch op.Kind {
	case OpReboot, OpKdump:
		if err := guard.Confirm(string(op.Kind), hostname, op.Magic, op.Reason); err != nil {
			return nil, err
		}
	}

	target, err := r.resolver.Resolve(ctx, hostname)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("hostname", hostname).
		Str("operation", string(op.Kind)).
		Str("manufacturer", string(target.Manufacturer)).
		Msg("Routing operation")

	switch op.Kind {
	case OpPower:
		return r.runCLI(ctx, target, cmdPowerStatus)
	case OpHealth:
		return r.runCLI(ctx, target, cmdSensor)
	case OpSEL:
		return r.runCLI(ctx, target, cmdSELList)
	case OpPowerOn:
		return r.runCLI(ctx, target, cmdPowerOn)
	case OpSetBootMode:
		return r.setBootMode(ctx, target, op.BootTarget)
	case OpReboot:
		return r.powerAction(ctx, target, cmdPowerCycle, "reboot", op.Reason)
	case OpKdump:
		return r.powerAction(ctx, target, cmdPowerDiag, "kdump", op.Reason)
	case OpDriveStatus:
		return r.driveStatus(ctx, target)
	case OpDriveLocate:
		return r.driveLocate(ctx, target, op)
	case OpNvmeStatus:
		return r.nvmeStatus(ctx, target)
	case OpNvmeLocate:
		return r.nvmeLocate(ctx, target, op)
	default:
		return nil, &InvalidArgumentError{Usage: fmt.Sprintf("unknown operation %q", op.Kind)}
	}
}

// runCLI executes one read-only IPMI CLI command.
func (r *Router) runCLI(ctx context.Context, target inventory.Target, command string) (*Result, error) {
	output, err := r.cli.Execute(ctx, target, transport.Payload{Command: command})
	if err != nil {
		return nil, err
	}
	return &Result{Output: output}, nil
}

// setBootMode issues the two sequential boot-mode calls. Both calls are
// always attempted; there is no rollback if the second fails after the
// first succeeded (at-most-once per step, an accepted protocol limitation).
func (r *Router) setBootMode(ctx context.Context, target inventory.Target, bootTarget string) (*Result, error) {
	if bootTarget != "pxe" && bootTarget != "bios" {
		return nil, &InvalidArgumentError{Usage: bootUsage}
	}

	commands := []string{
		"chassis bootdev " + bootTarget,
		"chassis bootparam set bootflag force_" + bootTarget,
	}

	var outputs []string
	var failures []string
	for _, command := range commands {
		output, err := r.cli.Execute(ctx, target, transport.Payload{Command: command})
		if err != nil {
			failures = append(failures, fmt.Sprintf("%q: %v", command, err))
			continue
		}
		outputs = append(outputs, output)
	}

	if len(failures) > 0 {
		return nil, fmt.Errorf("boot mode change to %s incomplete: %s", bootTarget, strings.Join(failures, "; "))
	}

	return &Result{
		Message: fmt.Sprintf("%s: boot mode set to %s", target.Hostname, bootTarget),
		Output:  strings.Join(outputs, "\n"),
	}, nil
}

// powerAction executes a confirmed destructive power operation and then
// notifies the fleet-status service. Notification failures never surface.
func (r *Router) powerAction(ctx context.Context, target inventory.Target, command, name, reason string) (*Result, error) {
	output, err := r.cli.Execute(ctx, target, transport.Payload{Command: command})
	if err != nil {
		return nil, err
	}

	r.notifier.SetOffline(ctx, target.Hostname, reason)

	return &Result{
		Message: fmt.Sprintf("%s: %s issued (%s)", target.Hostname, name, reason),
		Output:  output,
	}, nil
}

// driveStatus lists RAID physical disks on Dell hardware.
func (r *Router) driveStatus(ctx context.Context, target inventory.Target) (*Result, error) {
	if err := requireDell(OpDriveStatus, target.Manufacturer); err != nil {
		return nil, err
	}

	output, err := r.shell.Execute(ctx, target, transport.Payload{Command: racadm.StatusCommand()})
	if err != nil {
		return nil, err
	}

	disks, warning := racadm.ParseDiskStatus(output)

	return &Result{Disks: disks, Warning: warning, Output: output}, nil
}

// driveLocate toggles a drive bay LED on Dell hardware via RACADM.
func (r *Router) driveLocate(ctx context.Context, target inventory.Target, op Operation) (*Result, error) {
	if err := requireDell(OpDriveLocate, target.Manufacturer); err != nil {
		return nil, err
	}
	on, err := parseLocateArgs(op)
	if err != nil {
		return nil, err
	}

	output, err := r.shell.Execute(ctx, target, transport.Payload{Command: racadm.LocateCommand(on, op.Slot)})
	if err != nil {
		return nil, err
	}

	if !strings.Contains(output, racadm.BlinkSuccessMarker) {
		return nil, &transport.ProtocolError{Addr: target.Addr, Detail: output}
	}

	return &Result{Message: locateMessage(target.Hostname, op.Slot, on)}, nil
}

// nvmeStatus lists NVMe drives via Redfish on Dell and Supermicro hardware.
func (r *Router) nvmeStatus(ctx context.Context, target inventory.Target) (*Result, error) {
	switch target.Manufacturer {
	case inventory.ManufacturerDell, inventory.ManufacturerSupermicro:
	default:
		return nil, &UnsupportedManufacturerError{Operation: OpNvmeStatus, Manufacturer: target.Manufacturer}
	}

	body, err := r.rest.Execute(ctx, target, transport.Payload{
		Method: "GET",
		Path:   redfish.StatusPath(target.Manufacturer),
	})
	if err != nil {
		return nil, err
	}

	disks, err := redfish.ParseDriveStatus(body)
	if err != nil {
		return nil, err
	}

	if len(disks) == 0 {
		return &Result{Message: fmt.Sprintf("%s: no compatible drives found", target.Hostname)}, nil
	}

	return &Result{Disks: disks}, nil
}

// nvmeLocate toggles an NVMe bay LED via the Dell Redfish RAID service.
func (r *Router) nvmeLocate(ctx context.Context, target inventory.Target, op Operation) (*Result, error) {
	if err := requireDell(OpNvmeLocate, target.Manufacturer); err != nil {
		return nil, err
	}
	on, err := parseLocateArgs(op)
	if err != nil {
		return nil, err
	}

	_, err = r.rest.Execute(ctx, target, transport.Payload{
		Method: "POST",
		Path:   redfish.LocatePath(on),
		Body:   redfish.LocateBody(op.Slot),
	})
	if err != nil {
		return nil, err
	}

	return &Result{Message: locateMessage(target.Hostname, op.Slot, on)}, nil
}

// requireDell gates a vendor-specific operation on Dell hardware.
func requireDell(op OpKind, m inventory.Manufacturer) error {
	switch m {
	case inventory.ManufacturerDell:
		return nil
	default:
		return &UnsupportedManufacturerError{Operation: op, Manufacturer: m}
	}
}

// parseLocateArgs validates the locate state and slot before any transport
// contact.
func parseLocateArgs(op Operation) (bool, error) {
	var on bool
	switch op.LocateState {
	case "on":
		on = true
	case "off":
		on = false
	default:
		return false, &InvalidArgumentError{Usage: fmt.Sprintf("usage: %s <on|off> <slot>", op.Kind)}
	}

	if !isSlotNumber(op.Slot) {
		return false, &InvalidArgumentError{Usage: fmt.Sprintf("invalid slot %q: must be a non-negative integer", op.Slot)}
	}

	return on, nil
}

// isSlotNumber reports whether s is a non-negative integer string.
func isSlotNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// locateMessage preserves the historical operator-facing wording, typo
// included, which downstream tooling greps for.
func locateMessage(hostname, slot string, on bool) string {
	action := "blink"
	if !on {
		action = "unblink"
	}
	return fmt.Sprintf("%s: Drive in Slot %s sucessfully set to %s.", hostname, slot, action)
}
