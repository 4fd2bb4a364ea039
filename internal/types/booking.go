package types

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ExtensionStatus is the approval state of an extension request
type ExtensionStatus string

const (
	ExtensionStatusPending  ExtensionStatus = "pending"
	ExtensionStatusApproved ExtensionStatus = "approved"
	ExtensionStatusRejected ExtensionStatus = "rejected"
)

func (s ExtensionStatus) String() string {
	return string(s)
}

func (s ExtensionStatus) Validate() error {
	allowed := []ExtensionStatus{
		ExtensionStatusPending,
		ExtensionStatusApproved,
		ExtensionStatusRejected,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid extension status: %s", s)
	}
	return nil
}

// ExtensionInitiator is the party that raised an extension request
type ExtensionInitiator string

const (
	ExtensionInitiatorCustomer ExtensionInitiator = "customer"
	ExtensionInitiatorSeller   ExtensionInitiator = "seller"
)

func (i ExtensionInitiator) String() string {
	return string(i)
}

func (i ExtensionInitiator) Validate() error {
	allowed := []ExtensionInitiator{
		ExtensionInitiatorCustomer,
		ExtensionInitiatorSeller,
	}
	if !lo.Contains(allowed, i) {
		return fmt.Errorf("invalid extension initiator: %s", i)
	}
	return nil
}

// AddonKind classifies ancillary items attached to a booking
type AddonKind string

const (
	AddonKindHelmet AddonKind = "helmet"
	AddonKindOther  AddonKind = "other"
)

func (k AddonKind) String() string {
	return string(k)
}

func (k AddonKind) Validate() error {
	allowed := []AddonKind{
		AddonKindHelmet,
		AddonKindOther,
	}
	if !lo.Contains(allowed, k) {
		return fmt.Errorf("invalid addon kind: %s", k)
	}
	return nil
}

// AddonKindFromName classifies legacy addons that carry only a free text name.
// Any name containing "helmet" in any case is a helmet.
func AddonKindFromName(name string) AddonKind {
	if strings.Contains(strings.ToLower(name), string(AddonKindHelmet)) {
		return AddonKindHelmet
	}
	return AddonKindOther
}

// VehicleCondition is the condition recorded by the operator at drop
type VehicleCondition string

const (
	VehicleConditionExcellent VehicleCondition = "excellent"
	VehicleConditionGood      VehicleCondition = "good"
	VehicleConditionFair      VehicleCondition = "fair"
	VehicleConditionDamaged   VehicleCondition = "damaged"
)

func (c VehicleCondition) String() string {
	return string(c)
}

func (c VehicleCondition) Validate() error {
	allowed := []VehicleCondition{
		VehicleConditionExcellent,
		VehicleConditionGood,
		VehicleConditionFair,
		VehicleConditionDamaged,
	}
	if !lo.Contains(allowed, c) {
		return fmt.Errorf("invalid vehicle condition: %s", c)
	}
	return nil
}
