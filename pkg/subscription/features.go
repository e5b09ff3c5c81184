package subscription

type PlanType string

const (
	FreePlan PlanType = "free"
	ProPlan  PlanType = "pro"
)

type PlanDetails struct {
	Type     PlanType
	Name     string
	Price    string
	Features []string
}

var PlanCatalogue = map[PlanType]PlanDetails{
	FreePlan: {
		Type:  FreePlan,
		Name:  "Free",
		Price: "$0",
		Features: []string{
			"AI-written birthday, loyalty and weekend promotions",
			"Email promotions to your customers",
			"Recent campaign history",
		},
	},
	ProPlan: {
		Type:  ProPlan,
		Name:  "Pro",
		Price: "$19 / month",
		Features: []string{
			"Everything in Free",
			"Daily campaign summary by email",
			"Priority support",
		},
	},
}

// Plans returns the catalogue in display order.
func Plans() []PlanDetails {
	return []PlanDetails{PlanCatalogue[FreePlan], PlanCatalogue[ProPlan]}
}

// GetPlan falls back to the free plan for unknown types.
func GetPlan(plan PlanType) PlanDetails {
	if details, ok := PlanCatalogue[plan]; ok {
		return details
	}
	return PlanCatalogue[FreePlan]
}

func (p PlanType) IsValid() bool {
	_, ok := PlanCatalogue[p]
	return ok
}
