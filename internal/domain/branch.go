package domain

// Branch is a physical restaurant location. Branches and their table
// inventory are owned by branch management; this service only reads them.
type Branch struct {
	ID         int64
	Name       string
	Address    string
	TableCount int
}

// Dish is a menu item owned by menu management. Price is the
// authoritative unit price used when committing orders.
type Dish struct {
	ID    int64
	Name  string
	Price float64
}

// MenuEntry records whether a dish is currently offered at a branch.
// An order line for (dish, branch) is valid only if the entry exists
// and IsServed is true.
type MenuEntry struct {
	DishID   int64
	BranchID int64
	IsServed bool
}
