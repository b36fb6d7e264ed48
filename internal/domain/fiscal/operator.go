package fiscal

import "github.com/sangkips/fiscal-console/internal/domain/entity"

// OperatorMode selects how a fully blank operator is treated.
type OperatorMode int

const (
	// OperatorRequired is used for fiscal documents: the device refuses to
	// open a receipt without a logged-in operator.
	OperatorRequired OperatorMode = iota
	// OperatorOptional is used for non-fiscal slips. A blank operator is
	// simply absent and no till is needed.
	OperatorOptional
)

// OperatorCheck is the outcome of CollectOperator. Value is nil when the
// operator is absent or incomplete; Message is set only when it is invalid.
type OperatorCheck struct {
	Value   *entity.Operator
	Message string
}

// CollectOperator trims op and applies the all-or-nothing rule: either every
// credential is filled or none is.
func CollectOperator(op entity.Operator, mode OperatorMode) OperatorCheck {
	t := op.Trimmed()
	requireTill := mode == OperatorRequired
	if t.ID == "" && t.Password == "" && t.Till == "" {
		if mode == OperatorRequired {
			return OperatorCheck{Message: MsgOperatorRequired}
		}
		return OperatorCheck{}
	}
	if t.ID == "" || t.Password == "" || (requireTill && t.Till == "") {
		if requireTill {
			return OperatorCheck{Message: MsgOperatorRequired}
		}
		return OperatorCheck{Message: MsgOperatorNeedsPassword}
	}
	return OperatorCheck{Value: &t}
}

func operatorFields(op *entity.Operator) entity.OperatorFields {
	if op == nil {
		return entity.OperatorFields{}
	}
	return entity.OperatorFields{
		OperatorID:       op.ID,
		OperatorPassword: op.Password,
		OperatorTill:     op.Till,
		OperatorName:     op.Name,
	}
}
