package costs

// PropertyInputs describes the site and construction parameters used to
// derive the total development cost when it is not supplied directly.
type PropertyInputs struct {
	LandArea                 float64 `json:"land_area" yaml:"land_area"`                                     // m2
	BuildingFactor           float64 `json:"building_factor" yaml:"building_factor"`                         // buildable multiple of land area
	BuildingRatioPct         float64 `json:"building_ratio" yaml:"building_ratio"`                           // footprint share of the land, percent
	ConstructionCostPerSqm   float64 `json:"construction_cost_per_sqm" yaml:"construction_cost_per_sqm"`     // per buildable m2
	LandscapingCostPerSqm    float64 `json:"landscaping_cost_per_sqm" yaml:"landscaping_cost_per_sqm"`       // per unbuilt m2
	InfrastructureCostPerSqm float64 `json:"infrastructure_cost_per_sqm" yaml:"infrastructure_cost_per_sqm"` // per land m2
	DevelopmentYears         int     `json:"development_years" yaml:"development_years"`
}

// Ratios are the soft-cost percentages applied on top of the basic costs.
type Ratios struct {
	DesignPct      float64 `json:"design_cost_ratio" yaml:"design_cost_ratio"`
	SupervisionPct float64 `json:"supervision_cost_ratio" yaml:"supervision_cost_ratio"`
	ContingencyPct float64 `json:"contingency_cost_ratio" yaml:"contingency_cost_ratio"`
}

// Breakdown itemizes every intermediate of the cost derivation.
type Breakdown struct {
	BuildableArea        float64 `json:"buildable_area"`
	RemainingArea        float64 `json:"remaining_area"`
	ConstructionCost     float64 `json:"construction_cost"`
	LandscapingCost      float64 `json:"landscaping_cost"`
	InfrastructureCost   float64 `json:"infrastructure_cost"`
	BasicCosts           float64 `json:"basic_costs"`
	DesignCost           float64 `json:"design_cost"`
	SupervisionCost      float64 `json:"supervision_cost"`
	ContingencyCost      float64 `json:"contingency_cost"`
	TotalAdditionalCosts float64 `json:"total_additional_costs"`
	TotalDevelopmentCost float64 `json:"total_development_cost"`
}

// Calculate derives the total development cost from the site parameters.
//
// Basic costs cover construction on the buildable area, landscaping on the
// unbuilt remainder, and infrastructure over the whole site. Soft costs
// (design, supervision, contingency) are percentages of the basic total.
func Calculate(p PropertyInputs, r Ratios) Breakdown {
	b := Breakdown{
		BuildableArea: p.LandArea * p.BuildingFactor,
		RemainingArea: p.LandArea * (1 - p.BuildingRatioPct/100),
	}

	b.ConstructionCost = b.BuildableArea * p.ConstructionCostPerSqm
	b.LandscapingCost = b.RemainingArea * p.LandscapingCostPerSqm
	b.InfrastructureCost = p.LandArea * p.InfrastructureCostPerSqm
	b.BasicCosts = b.ConstructionCost + b.LandscapingCost + b.InfrastructureCost

	b.DesignCost = b.BasicCosts * (r.DesignPct / 100)
	b.SupervisionCost = b.BasicCosts * (r.SupervisionPct / 100)
	b.ContingencyCost = b.BasicCosts * (r.ContingencyPct / 100)
	b.TotalAdditionalCosts = b.DesignCost + b.SupervisionCost + b.ContingencyCost

	b.TotalDevelopmentCost = b.BasicCosts + b.TotalAdditionalCosts
	return b
}
