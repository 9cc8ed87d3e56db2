package campus

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// recordValidate checks struct tags on Node and Edge. validator caches
// struct metadata, so a single package-level instance is reused.
var recordValidate = validator.New(validator.WithRequiredStructEnabled())

// validateNode reports field-level problems with a node record.
// pos is the record position in the input slice, used for error context.
func validateNode(pos int, n Node) error {
	if err := recordValidate.Struct(n); err != nil {
		return fmt.Errorf("%w: node #%d (%q): %s", ErrInvalidRecord, pos, n.ID, describe(err))
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		return fmt.Errorf("%w: node #%d (%q): NaN coordinate", ErrInvalidRecord, pos, n.ID)
	}

	return nil
}

// validateEdge reports field-level problems with an edge record.
// NaN fails the gte tag; +Inf passes it and is rejected here.
func validateEdge(pos int, e Edge) error {
	if err := recordValidate.Struct(e); err != nil {
		return fmt.Errorf("%w: edge #%d (%s-%s): %s", ErrInvalidRecord, pos, e.From, e.To, describe(err))
	}
	if math.IsInf(e.Length, 0) {
		return fmt.Errorf("%w: edge #%d (%s-%s): infinite length", ErrInvalidRecord, pos, e.From, e.To)
	}

	return nil
}

// describe flattens validator errors into "Field:tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+":"+fe.Tag())
	}

	return strings.Join(parts, ", ")
}
