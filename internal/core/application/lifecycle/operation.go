package lifecycle

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Operation selects one lifecycle transition.
type Operation string

const (
	OperationReceive  Operation = "receive"
	OperationInspect  Operation = "inspect"
	OperationPutaway  Operation = "putaway"
	OperationPick     Operation = "pick"
	OperationAssemble Operation = "assemble"
	OperationReturn   Operation = "return"
)

// Request field names. They match the scanner form the operators use.
const (
	FieldContainerCode     = "containerCode"
	FieldSKU               = "sku"
	FieldQuantity          = "quantity"
	FieldDecision          = "decision"
	FieldLocationCode      = "locationCode"
	FieldMaterialContainer = "materialContainer"
	FieldProductContainer  = "productContainer"
	FieldProductSKU        = "productSku"
	FieldProductQty        = "productQty"
)

// getOperationNames maps every accepted selector, lower-cased, to its
// operation. The terminal mode names are accepted next to the verbs.
func getOperationNames() map[string]Operation {
	return map[string]Operation{
		"receive":   OperationReceive,
		"receiving": OperationReceive,
		"inspect":   OperationInspect,
		"qc":        OperationInspect,
		"putaway":   OperationPutaway,
		"pick":      OperationPick,
		"picking":   OperationPick,
		"assemble":  OperationAssemble,
		"assembly":  OperationAssemble,
		"return":    OperationReturn,
	}
}

// Operations returns every operation in workflow order.
func Operations() []Operation {
	return []Operation{
		OperationReceive,
		OperationInspect,
		OperationPutaway,
		OperationPick,
		OperationAssemble,
		OperationReturn,
	}
}

// ParseOperation resolves a selector, ignoring case and surrounding spaces.
func ParseOperation(raw string) (Operation, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", errs.NewValueIsRequiredError("operation")
	}

	op, ok := getOperationNames()[name]
	if !ok {
		names := make([]string, 0, len(Operations()))
		for _, known := range Operations() {
			names = append(names, string(known))
		}
		return "", errs.NewValueIsInvalidErrorWithCause(
			"operation",
			fmt.Errorf("%q is not one of %s", raw, strings.Join(names, ", ")),
		)
	}
	return op, nil
}
