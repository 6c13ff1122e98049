package inventory

import "context"

// Manufacturer represents the hardware vendor of a managed machine.
// It is a closed set; operations switch over it exhaustively so that adding
// a vendor is a compile-time extension point rather than a string comparison.
type Manufacturer string

const (
	ManufacturerDell       Manufacturer = "Dell"
	ManufacturerSupermicro Manufacturer = "Supermicro"
	ManufacturerUnknown    Manufacturer = "Unknown"
)

// ParseManufacturer maps a raw inventory manufacturer string onto the closed
// vendor set.
func ParseManufacturer(raw string) Manufacturer {
	switch {
	case containsFold(raw, "dell"):
		return ManufacturerDell
	case containsFold(raw, "supermicro"):
		return ManufacturerSupermicro
	default:
		return ManufacturerUnknown
	}
}

// Target is a resolved management endpoint. It is created once per
// invocation by a Resolver and never mutated afterward.
type Target struct {
	Hostname     string
	Addr         string
	Manufacturer Manufacturer
}

// Resolver maps a hostname to its management address and manufacturer.
// Every operation that touches the network resolves exactly once; a resolver
// failure is fatal to the whole operation.
type Resolver interface {
	Resolve(ctx context.Context, hostname string) (Target, error)
}
