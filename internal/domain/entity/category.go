package entity

// Categorías fijas del catálogo de equipos solares.
const (
	CategoryPanels       = "panels"
	CategoryInverters    = "inverters"
	CategoryBatteries    = "batteries"
	CategoryFans         = "fans"
	CategoryStreetLights = "street lights"
	CategoryFloodLights  = "flood lights"
	CategoryAccessories  = "accessories"
)

// Categories lista el conjunto cerrado de categorías en orden de presentación.
func Categories() []string {
	return []string{
		CategoryPanels,
		CategoryInverters,
		CategoryBatteries,
		CategoryFans,
		CategoryStreetLights,
		CategoryFloodLights,
		CategoryAccessories,
	}
}

// IsValidCategory indica si cat pertenece al conjunto fijo.
func IsValidCategory(cat string) bool {
	for _, c := range Categories() {
		if c == cat {
			return true
		}
	}
	return false
}
