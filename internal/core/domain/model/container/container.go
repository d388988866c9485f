package container

import (
	"errors"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container instance was not created
	// through NewContainer or RestoreContainer.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

// Field names a mutable part of a Container. Repositories write only the
// fields a container reports through Changes.
type Field int

const (
	FieldSKU Field = iota + 1
	FieldQuantity
	FieldStatus
	FieldLocation
)

func (f Field) String() string {
	switch f {
	case FieldSKU:
		return "sku"
	case FieldQuantity:
		return "quantity"
	case FieldStatus:
		return "status"
	case FieldLocation:
		return "location"
	default:
		return "unknown"
	}
}

// Container is the aggregate root for a physical tote, box or pallet tracked
// through the warehouse workflow.
//
// Container follows these invariants:
//   - code is non-blank and never changes
//   - status is one of the six lifecycle states, or Unknown for a restored
//     record whose stored status is missing or unrecognized
//   - Idle and Empty containers hold no SKU and no quantity
//   - every other status holds a SKU and a non-negative quantity
//   - the location identifier is always set
//
// Every mutating method records the fields it changed, so a repository can
// merge exactly those fields into the stored record and leave the rest alone.
type Container struct {
	// id is the internal identifier
	id kernel.UUID

	// code is the natural key printed on the container
	code kernel.Code

	// sku identifies the material held; zero when the container holds nothing
	sku kernel.Code

	// quantity of the SKU held; nil when the container holds nothing
	quantity *int

	// status is the current lifecycle state
	status Status

	// locationID references the location the container occupies
	locationID kernel.UUID

	// changes holds the fields modified since construction or the last ClearChanges
	changes []Field

	// isConstructed ensures the container was created via a constructor
	isConstructed bool
}

// NewContainer creates a loaded container in PendingQC. Receiving and assembly
// both create containers this way.
//
// Example:
//
//	c, err := container.NewContainer(kernel.NewUUID(), code, sku, 10, receivingID)
//	if err != nil {
//	    // Handle validation error
//	}
func NewContainer(
	id kernel.UUID,
	code kernel.Code,
	sku kernel.Code,
	quantity int,
	locationID kernel.UUID,
) (*Container, error) {
	c := &Container{
		status:        PendingQC,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		c.setSKU(sku),
		c.setQuantity(&quantity),
		c.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContainer rebuilds a container from persisted state. Unlike
// NewContainer it accepts any status and an absent SKU and quantity, but it
// still enforces every invariant.
//
// Unknown is accepted for records whose stored status is missing or outside
// the enumeration. Such a container holds whatever material was stored; it
// can be put away or returned, and every other transition is rejected.
func RestoreContainer(
	id kernel.UUID,
	code kernel.Code,
	sku kernel.Code,
	quantity *int,
	status Status,
	locationID kernel.UUID,
) (*Container, error) {
	c := &Container{
		isConstructed: true,
	}

	hasSKU := !sku.IsZero()
	hasQuantity := quantity != nil

	var materialErr error
	switch {
	case hasSKU != hasQuantity:
		materialErr = errors.New("sku and quantity must be both present or both absent")
	case status == Unknown:
	default:
		materialErr = status.ValidateCanHoldMaterial(hasSKU)
	}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		materialErr,
		c.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	c.status = status
	if hasSKU {
		c.sku = sku
		q := *quantity
		if err := c.setQuantity(&q); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the Container was created through a constructor.
func (c *Container) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContainerIsNotConstructed
	}
	return nil
}

// ID returns the internal identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Code returns the natural key.
func (c *Container) Code() kernel.Code {
	return c.code
}

// SKU returns the held SKU and whether one is held.
func (c *Container) SKU() (kernel.Code, bool) {
	return c.sku, !c.sku.IsZero()
}

// Quantity returns the held quantity and whether one is held.
func (c *Container) Quantity() (int, bool) {
	if c.quantity == nil {
		return 0, false
	}
	return *c.quantity, true
}

// Status returns the current lifecycle state.
func (c *Container) Status() Status {
	return c.status
}

// LocationID returns the identifier of the occupied location.
func (c *Container) LocationID() kernel.UUID {
	return c.locationID
}

// Changes returns the fields modified since the container was built or last
// persisted, in a stable order.
func (c *Container) Changes() []Field {
	out := slices.Clone(c.changes)
	slices.Sort(out)
	return out
}

// ClearChanges forgets recorded changes. Repositories call it after a write.
func (c *Container) ClearChanges() {
	c.changes = nil
}

// Inspect applies a quality control decision: pass moves the container to
// Stored, fail to QCHold. The location does not change.
func (c *Container) Inspect(decision Decision) error {
	newStatus, err := c.status.Inspect(decision)
	if err != nil {
		return err
	}

	c.changeStatus(newStatus)
	return nil
}

// MoveTo puts the container away at another location. Status, SKU and
// quantity are left untouched.
func (c *Container) MoveTo(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	if !c.locationID.IsEqual(locationID) {
		c.locationID = locationID
		c.track(FieldLocation)
	}
	return nil
}

// Pick marks the container InTransit. Picking an InTransit container is a no-op.
func (c *Container) Pick() error {
	newStatus, err := c.status.Pick()
	if err != nil {
		return err
	}

	c.changeStatus(newStatus)
	return nil
}

// Consume empties an assembly material container: the SKU and quantity are
// cleared and the status becomes Empty.
func (c *Container) Consume() error {
	newStatus, err := c.status.Consume()
	if err != nil {
		return err
	}

	c.clearMaterial()
	c.changeStatus(newStatus)
	return nil
}

// Return clears the SKU and quantity and makes the container Idle so it can
// be reused. Returning an Idle container changes nothing.
func (c *Container) Return() error {
	newStatus, err := c.status.Return()
	if err != nil {
		return err
	}

	c.clearMaterial()
	c.changeStatus(newStatus)
	return nil
}

func (c *Container) changeStatus(status Status) {
	if c.status != status {
		c.status = status
		c.track(FieldStatus)
	}
}

func (c *Container) clearMaterial() {
	if !c.sku.IsZero() {
		c.sku = kernel.Code{}
		c.track(FieldSKU)
	}
	if c.quantity != nil {
		c.quantity = nil
		c.track(FieldQuantity)
	}
}

func (c *Container) track(field Field) {
	if !slices.Contains(c.changes, field) {
		c.changes = append(c.changes, field)
	}
}

func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.code = code
	return nil
}

func (c *Container) setSKU(sku kernel.Code) error {
	if err := sku.Validate(); err != nil {
		return err
	}
	c.sku = sku
	return nil
}

func (c *Container) setQuantity(quantity *int) error {
	if err := kernel.ValidateQuantity("quantity", *quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}

func (c *Container) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	c.locationID = locationID
	return nil
}
