package planning

import (
	"sort"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// shoppingList accumulates quantities by ingredient id in insertion order
type shoppingList struct {
	byID  map[int]*domain.IngredientTotal
	order []int
}

func newShoppingList() *shoppingList {
	return &shoppingList{byID: make(map[int]*domain.IngredientTotal)}
}

func (l *shoppingList) add(id int, name, imageURL string, qty int) {
	if qty <= 0 {
		return
	}
	line, ok := l.byID[id]
	if !ok {
		line = &domain.IngredientTotal{ID: id, Name: name, ImageURL: imageURL}
		l.byID[id] = line
		l.order = append(l.order, id)
	}
	line.Quantity = addCapped(line.Quantity, qty)
}

func (l *shoppingList) sorted() []domain.IngredientTotal {
	out := make([]domain.IngredientTotal, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity > out[j].Quantity
	})
	return out
}

// BuildShoppingList flattens requirements into what must still be collected.
//
// Non-craftable and unselected craftable requirements are listed at their
// post-stock quantity. Selected craftable requirements are replaced by their
// ingredient chain, reduced in proportion to the stock already owned; when a
// chain ingredient is itself a tracked requirement its stock is deducted
// again. Lines are merged by ingredient id and sorted largest first.
func BuildShoppingList(reqs []domain.ResourceRequirement, selected Selection, stock LocalStock) []domain.IngredientTotal {
	tracked := make(map[int]struct{}, len(reqs))
	for _, req := range reqs {
		tracked[req.ID] = struct{}{}
	}

	list := newShoppingList()
	for _, req := range reqs {
		final := NetAgainstStock(req, stock)

		if !req.IsCraftable || !selected.Has(req.ID) {
			list.add(req.ID, req.Name, req.ImageURL, final)
			continue
		}

		if req.TotalQuantity == 0 {
			continue
		}

		for _, sub := range req.IngredientChain {
			// chain quantity * final / total, kept in integers
			qty := mulCapped(sub.QuantityPerUnit, final)
			if _, ok := tracked[sub.ID]; ok {
				qty -= stock.Get(sub.ID)
			}
			list.add(sub.ID, sub.Name, sub.ImageURL, qty)
		}
	}

	return list.sorted()
}
