package store

import "finboard/internal/core"

func categoryID(c core.Category) string { return c.ID }

type (
	// AddCategory appends a category with a freshly generated id.
	AddCategory struct {
		Name string
		Type core.EntryType
		id   string
	}

	// EditCategory replaces the category with the same id.
	EditCategory struct {
		Category core.Category
	}

	// DeleteCategory removes a category. Budgets and transactions naming it
	// are left as they are.
	DeleteCategory struct {
		ID string
	}
)

func (AddCategory) ActionType() string    { return "categories/addCategory" }
func (EditCategory) ActionType() string   { return "categories/editCategory" }
func (DeleteCategory) ActionType() string { return "categories/deleteCategory" }

func (a AddCategory) assignID(id string) Action {
	a.id = id
	return a
}

func (a AddCategory) apply(s State) State {
	c := core.Category{ID: a.id, Name: a.Name, Type: a.Type}
	s.Categories.Categories = push(s.Categories.Categories, c)
	return s
}

func (a EditCategory) apply(s State) State {
	s.Categories.Categories = replace(s.Categories.Categories, a.Category.ID, a.Category, categoryID)
	return s
}

func (a DeleteCategory) apply(s State) State {
	s.Categories.Categories = remove(s.Categories.Categories, a.ID, categoryID)
	return s
}
