// internal/services/rti/templates.go
package rti

// Complaint categories with a prepared application template.
const (
	CategoryRationCardDelay          = "ration_card_delay"
	CategoryPensionDelay             = "pension_delay"
	CategoryRoadRepair               = "road_repair"
	CategoryWaterSupply              = "water_supply"
	CategorySchemeBenefitNotReceived = "scheme_benefit_not_received"
	CategoryElectricityIssue         = "electricity_issue"
	CategoryMGNREGAWageDelay         = "mgnrega_wage_delay"
	CategoryGeneral                  = "general"
)

// Template holds the department routing and suggested questions for one
// complaint category.
type Template struct {
	Department string
	PIO        string
	Fee        string
	Questions  []string
}

var templates = map[string]Template{
	CategoryRationCardDelay: {
		Department: "Food & Civil Supplies Department",
		PIO:        "District Food & Civil Supplies Officer (DFSO)",
		Fee:        "₹10",
		Questions: []string{
			"When was the application submitted and what is the application/reference number?",
			"What is the current status and reason for delay beyond the prescribed 15-day timeline?",
			"How many similar applications are pending in the applicant's district?",
			"What action has been taken against officials responsible for the delay?",
		},
	},
	CategoryPensionDelay: {
		Department: "Social Welfare Department",
		PIO:        "District Social Welfare Officer",
		Fee:        "₹10",
		Questions: []string{
			"What is the current status of the pension application and reason for delay?",
			"On what date will the pension payments begin?",
			"How many pension applications are pending in the district?",
			"What corrective measures are being taken to clear the backlog?",
		},
	},
	CategoryRoadRepair: {
		Department: "Public Works Department (PWD)",
		PIO:        "Executive Engineer, PWD Division",
		Fee:        "₹10",
		Questions: []string{
			"What is the current condition report of the road and last maintenance date?",
			"What budget has been allocated for repair and what is the timeline?",
			"How many accidents have been reported on this road in the last 12 months?",
			"What action has been taken on previous complaints regarding this road?",
		},
	},
	CategoryWaterSupply: {
		Department: "Public Health Engineering / Jal Shakti Department",
		PIO:        "Executive Engineer, PHED Division",
		Fee:        "₹10",
		Questions: []string{
			"What is the schedule and source of water supply in the applicant's area?",
			"What is the reason for irregular/no water supply?",
			"What budget has been allocated for water infrastructure improvement?",
			"When will regular supply be restored?",
		},
	},
	CategorySchemeBenefitNotReceived: {
		Department: "Respective scheme department",
		PIO:        "District level officer of the concerned department",
		Fee:        "₹10",
		Questions: []string{
			"What is the current status of the applicant's enrollment in the scheme?",
			"If approved, on what date was the benefit disbursed and to which account?",
			"If rejected, what is the reason for rejection and appeal process?",
			"How many beneficiaries in the district are yet to receive their benefits?",
		},
	},
	CategoryElectricityIssue: {
		Department: "State Electricity Distribution Company (DISCOM)",
		PIO:        "Superintending Engineer, DISCOM",
		Fee:        "₹10",
		Questions: []string{
			"What is the status of the electricity connection application/complaint?",
			"What is the reason for power outages and expected resolution date?",
			"What is the average power supply hours in the applicant's area?",
			"What compensation is applicable under consumer protection norms?",
		},
	},
	CategoryMGNREGAWageDelay: {
		Department: "District Rural Development Agency (DRDA)",
		PIO:        "District Programme Coordinator, MGNREGA",
		Fee:        "₹10 (BPL applicants exempted)",
		Questions: []string{
			"What is the total number of days worked and wage due to the applicant?",
			"Why have wages not been paid within the statutory 15-day period?",
			"What compensation is due under delayed payment provisions of MGNREGA?",
			"How many workers in the district have pending wage payments?",
		},
	},
	CategoryGeneral: {
		Department: "To be identified based on complaint",
		PIO:        "Public Information Officer of the concerned department",
		Fee:        "₹10 (BPL exempted)",
		Questions: []string{
			"Please provide complete information regarding the subject matter",
			"What actions have been taken on previous requests/complaints?",
			"What is the timeline for resolution?",
			"Who is the responsible officer?",
		},
	},
}

// TemplateFor returns the template for a category, falling back to the
// general template for unknown categories.
func TemplateFor(category string) Template {
	if t, ok := templates[category]; ok {
		return t
	}
	return templates[CategoryGeneral]
}

// Categories returns every known complaint category.
func Categories() []string {
	return []string{
		CategoryRationCardDelay,
		CategoryPensionDelay,
		CategoryRoadRepair,
		CategoryWaterSupply,
		CategorySchemeBenefitNotReceived,
		CategoryElectricityIssue,
		CategoryMGNREGAWageDelay,
		CategoryGeneral,
	}
}
