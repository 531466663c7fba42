package calc

// Buffer baseline amounts, per the original minimum-buffer heuristic.
const (
	baseInventoryBuffer   = 1000
	coupleInventoryExtra  = 500
	perChildInventory     = 250
	homeMaintenanceRate   = 0.005
	baseCarMaintenance    = 1000
	expensiveCarExtra     = 500
	expensiveCarThreshold = 10000
	unforeseenBuffer      = 1000
)

// BufferInput describes a household for the minimum-buffer estimate.
type BufferInput struct {
	Couple    bool    `json:"couple"`
	Children  int     `json:"children"`
	HasHome   bool    `json:"hasHome"`
	HomeValue float64 `json:"homeValue"`
	HasCar    bool    `json:"hasCar"`
	CarValue  float64 `json:"carValue"`
}

// BufferResult breaks the recommended minimum balance down by category.
type BufferResult struct {
	Inventory  float64 `json:"inventory"`
	Home       float64 `json:"home"`
	Car        float64 `json:"car"`
	Unforeseen float64 `json:"unforeseen"`
	Total      float64 `json:"total"`
}

// MinimumBuffer estimates the financial buffer a household should keep:
// inventory replacement scaled by household size, yearly home maintenance
// at 0.5% of the home value, a flat car reserve and a fixed unforeseen
// amount.
func MinimumBuffer(in BufferInput) BufferResult {
	inventory := float64(baseInventoryBuffer)
	if in.Couple {
		inventory += coupleInventoryExtra
	}
	inventory += float64(in.Children) * perChildInventory

	var home float64
	if in.HasHome {
		home = in.HomeValue * homeMaintenanceRate
	}

	var car float64
	if in.HasCar {
		car = baseCarMaintenance
		if in.CarValue > expensiveCarThreshold {
			car += expensiveCarExtra
		}
	}

	r := BufferResult{
		Inventory:  inventory,
		Home:       home,
		Car:        car,
		Unforeseen: unforeseenBuffer,
	}
	r.Total = r.Inventory + r.Home + r.Car + r.Unforeseen
	return r
}
