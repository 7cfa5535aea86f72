package wizard

// Family plan builder steps.
const (
	StepHousehold Step = "household"
	StepUsage     Step = "usage"
	StepPlan      Step = "plan"
	StepDevices   Step = "devices"
	StepSafety    Step = "safety"
	StepSummary   Step = "summary"
)

// Gen Z finder steps.
const (
	StepStyle    Step = "style"
	StepBudget   Step = "budget"
	StepPriority Step = "priority"
	StepResults  Step = "results"
	StepCheckout Step = "checkout"
)

// Young Professional quiz steps.
const (
	StepPriorities Step = "priorities"
	StepTravel     Step = "travel"
	StepWorkStyle  Step = "work_style"
)

// Value Switcher steps.
const (
	StepCurrentCarrier Step = "current_carrier"
	StepBYOCheck       Step = "byo_check"
	StepDeals          Step = "deals"
	StepPorting        Step = "porting"
)

// Flows of the four personas.
var (
	FamilyFlow   = NewFlow("family_plan_builder", StepHousehold, StepUsage, StepPlan, StepDevices, StepSafety, StepSummary)
	GenZFlow     = NewFlow("genz_finder", StepStyle, StepBudget, StepPriority, StepResults, StepCheckout)
	YoungProFlow = NewFlow("young_pro_quiz", StepPriorities, StepBudget, StepTravel, StepWorkStyle, StepResults)
	SwitcherFlow = NewFlow("value_switcher", StepCurrentCarrier, StepUsage, StepBYOCheck, StepDeals, StepPorting, StepSummary)
)
