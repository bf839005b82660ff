package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const defaultOrdersLimit = 10

// ListOrdersQuery pages through the orders the actor may see, optionally
// narrowed to one status.
//
// Example:
//
//	status := order.Pending
//	query, err := NewListOrdersQuery(actorID, &status, 1, 20)
//	result, err := handler.Handle(ctx, query)
//	fmt.Printf("page %d of %d\n", result.Pagination.CurrentPage, result.Pagination.TotalPages)
type ListOrdersQuery struct {
	actorID kernel.UUID
	status  *order.Status
	page    Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actorID kernel.UUID, status *order.Status, page, limit int) (ListOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		actorID: actorID,
		status:  status,
		page:    normalizePage(page, limit, defaultOrdersLimit),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Status returns the filter, or nil for every status.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Page() Page {
	return q.page
}

type ListOrdersQueryResponse struct {
	Orders     []OrderView
	Pagination Pagination
}
